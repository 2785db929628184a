package testutil

import (
	"fmt"

	"github.com/luci18530/GastX/internal/domain"
	"github.com/shopspring/decimal"
)

// NewTransaction builds a transaction; amount is parsed as a decimal string
func NewTransaction(date, title, category, amount string) domain.Transaction {
	return domain.Transaction{
		Date:     date,
		Title:    title,
		Category: category,
		Amount:   decimal.RequireFromString(amount),
	}
}

// SampleTransactions is the three-line statement used across tests:
// two January lines (one expense, one income) and one February expense
func SampleTransactions() []domain.Transaction {
	return []domain.Transaction{
		NewTransaction("2024-01-15", "Uber *Trip", "Transporte", "100"),
		NewTransaction("2024-01-20", "Salario ACME", "Salário", "-50"),
		NewTransaction("2024-02-01", "Posto Shell", "Transporte", "30"),
	}
}

// MixedTransactions covers both date formats, an uncategorized line, a zero
// amount and an unparseable date
func MixedTransactions() []domain.Transaction {
	return []domain.Transaction{
		NewTransaction("2023-12-30", "iFood *Pedido", "Alimentação", "45.10"),
		NewTransaction("05/01/2024", "Netflix.com", "Entretenimento", "39.90"),
		NewTransaction("2024-01-07", "PIX recebido de Maria", "Transferências", "-200"),
		NewTransaction("12/01/2024", "Padaria Pao Quente", "", "12.35"),
		NewTransaction("2024-01-12", "Estorno tarifa", "Impostos/Taxas", "0"),
		NewTransaction("2024-02-03", "Drogasil", "Saúde", "80.005"),
		NewTransaction("03-fev", "Linha corrompida", "Outros", "999"),
		NewTransaction("2024-02-10", "Uber *Trip", "Transporte", "25.5"),
	}
}

// SampleStatement wraps SampleTransactions in an upload response
func SampleStatement() domain.Statement {
	return domain.Statement{
		Success:           true,
		BankDetected:      "Nubank",
		TotalTransactions: 3,
		TotalSpent:        decimal.RequireFromString("130"),
		TotalReceived:     decimal.RequireFromString("50"),
		Transactions:      SampleTransactions(),
		CategorySummary: []domain.CategorySummaryEntry{
			{Category: "Transporte", Total: decimal.RequireFromString("130"), Count: 2, Percentage: decimal.RequireFromString("100")},
		},
	}
}

// TransactionsOfSize generates n ISO-dated expenses spread across 2024
func TransactionsOfSize(n int) []domain.Transaction {
	out := make([]domain.Transaction, n)
	for i := range out {
		month := i%12 + 1
		day := i%28 + 1
		out[i] = domain.Transaction{
			Date:     isoDate(2024, month, day),
			Title:    "Compra",
			Category: "Compras",
			Amount:   decimal.NewFromInt(int64(i + 1)),
		}
	}
	return out
}

func isoDate(y, m, d int) string {
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}
