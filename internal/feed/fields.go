package feed

import "strings"

// Field names a semantic column of the sales feed. The constants are the
// canonical keys records are stored under; CanonicalKey folds the header
// variants seen across feed revisions onto them.
type Field string

const (
	FieldPurchaseDate  Field = "data_da_compra"
	FieldTransactionID Field = "transacao_prod"
	FieldStatus        Field = "status"
	FieldPlatform      Field = "plataforma"
	FieldBuyerName     Field = "nome_do_comprador"
	FieldEmail         Field = "email"
	FieldProductName   Field = "produto_comprado"
	FieldSaleValue     Field = "valor_venda"
	FieldCommission    Field = "comissao"
	FieldInstallments  Field = "parcelas"
	FieldPaymentMethod Field = "forma_de_pagamento"
	FieldOrderBump     Field = "order_bump"
	FieldState         Field = "estado"
	FieldCountry       Field = "pais"
	FieldUTMSource     Field = "utm_source"
	FieldUTMMedium     Field = "utm_medium"
	FieldUTMCampaign   Field = "utm_campaign"
)

// CanonicalKey normalizes a feed header so that spacing, underscore and
// casing variants of the same column ("Data da compra", "Data_da_compra",
// "DATA DA COMPRA") resolve to one key.
func CanonicalKey(header string) string {
	key := strings.ReplaceAll(header, "\u00a0", " ")
	key = strings.TrimSpace(key)
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, " ", "_")
	for strings.Contains(key, "__") {
		key = strings.ReplaceAll(key, "__", "_")
	}
	return key
}
