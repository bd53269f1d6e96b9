package models

// ClientType distinguishes individuals from organizations.
type ClientType string

// Client kinds.
const (
	ClientPessoaFisica   ClientType = "Pessoa Física"
	ClientPessoaJuridica ClientType = "Pessoa Jurídica"
)

// Valid reports whether the client type belongs to the closed set.
func (t ClientType) Valid() bool {
	return t == ClientPessoaFisica || t == ClientPessoaJuridica
}

// Client holds the structure for a contact record. Document carries the CPF
// or CNPJ as free text; its format is not validated.
type Client struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Phone    string     `json:"phone"`
	Type     ClientType `json:"type"`
	Document string     `json:"document"`
}
