package models

import "testing"

func TestIsValidSlug(t *testing.T) {
	valid := []string{
		"hello-world",
		"hello123",
		"123-hello",
		"a",
		"a-b-c",
	}
	for _, slug := range valid {
		if !IsValidSlug(slug) {
			t.Errorf("IsValidSlug(%q) = false, want true", slug)
		}
	}

	invalid := []string{
		"",
		"Hello-world",
		"hello world",
		"hello--world",
		"-hello-world",
		"hello-world-",
		"hello_world",
		"héllo",
	}
	for _, slug := range invalid {
		if IsValidSlug(slug) {
			t.Errorf("IsValidSlug(%q) = true, want false", slug)
		}
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleUser.Valid() || !RoleAdmin.Valid() {
		t.Error("built-in roles must be valid")
	}
	if Role("ROOT").Valid() {
		t.Error("unknown role must be invalid")
	}
}

func TestInvoiceKindValid(t *testing.T) {
	if !InvoiceSale.Valid() || !InvoicePurchase.Valid() {
		t.Error("built-in kinds must be valid")
	}
	if InvoiceKind("RETURN").Valid() {
		t.Error("unknown kind must be invalid")
	}
}
