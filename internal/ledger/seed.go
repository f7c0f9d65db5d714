package ledger

import "github.com/joselucas77/poupix/internal/model"

// DefaultSalary is the salary the dashboard starts with.
const DefaultSalary = 1518.98

// SeedTransactions returns the demo ledger the dashboard opens with:
// two goals and four debts, ids assigned fresh on every call.
func SeedTransactions() []model.Transaction {
	seed := []model.Transaction{
		{Name: "Casamento", Date: "05/05/2026", Amount: 8000, Icon: "C", Category: model.CategoryGoal, Installment: model.InstallmentOneTime},
		{Name: "Faculdade", Date: "23/08/2025", Amount: 128.90, Icon: "F", Category: model.CategoryDebt, Installment: model.InstallmentMonthly},
		{Name: "Spotify", Date: "12/09/2025", Amount: 11.99, Icon: "S", Category: model.CategoryDebt, Installment: model.InstallmentMonthly},
		{Name: "Parcela Notebook", Date: "15/12/2027", Amount: 300, Icon: "PN", Category: model.CategoryDebt, Installment: model.InstallmentMonthly},
		{Name: "Cartão de Crédito", Date: "30/11/2024", Amount: 450.50, Icon: "CC", Category: model.CategoryDebt, Installment: model.InstallmentMonthly},
		{Name: "Viagem SP", Date: "10/06/2025", Amount: 6000, Icon: "V", Category: model.CategoryGoal, Installment: model.InstallmentOneTime},
	}
	for i := range seed {
		seed[i].ID = model.NewID()
	}
	return seed
}
