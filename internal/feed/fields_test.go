package feed

import "testing"

func TestCanonicalKeyFoldsHeaderVariants(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Data da compra", "data_da_compra"},
		{"Data_da_compra", "data_da_compra"},
		{"  DATA DA COMPRA  ", "data_da_compra"},
		{"Forma de  Pagamento", "forma_de_pagamento"},
		{"Valor_Venda", "valor_venda"},
		{"Utm Source", "utm_source"},
		{"Status", "status"},
	}

	for _, tt := range tests {
		if got := CanonicalKey(tt.header); got != tt.want {
			t.Fatalf("CanonicalKey(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestRecordGetTrimsAndReportsPresence(t *testing.T) {
	record := Record{}
	record.Set("Produto comprado", "  Curso de Marketing Digital  ")
	record.Set("Estado", "   ")

	value, ok := record.Get(FieldProductName)
	if !ok || value != "Curso de Marketing Digital" {
		t.Fatalf("unexpected product value %q (ok=%v)", value, ok)
	}

	if _, ok := record.Get(FieldState); ok {
		t.Fatalf("blank value should read as absent")
	}
	if _, ok := record.Get(FieldCountry); ok {
		t.Fatalf("missing key should read as absent")
	}
}
