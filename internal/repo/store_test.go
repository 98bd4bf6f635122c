package repo

import (
	"context"
	"errors"

	dom "ControleGastos/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// StoreSuite runs against every driver; open returns a fresh, empty store.
type StoreSuite struct {
	suite.Suite
	open  func(ctx context.Context) (*Store, error)
	ctx   context.Context
	store *Store
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	store, err := s.open(s.ctx)
	s.Require().NoError(err)
	s.store = store
}

func (s *StoreSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func (s *StoreSuite) createUser(identifier, email string, age int) dom.User {
	u, err := s.store.Users.Create(s.ctx, dom.User{
		Identifier: identifier, Name: "User " + identifier, Age: age, Email: email,
	})
	s.Require().NoError(err)
	return u
}

func (s *StoreSuite) addTx(userID int64, kind dom.Kind, amount string) dom.Transaction {
	t, err := s.store.Transactions.CreateChecked(s.ctx, dom.Transaction{
		Description: string(kind), Amount: decimal.RequireFromString(amount), Kind: kind, UserID: userID,
	}, func(Sums) error { return nil })
	s.Require().NoError(err)
	return t
}

func (s *StoreSuite) TestPing() {
	s.NoError(s.store.Ping(s.ctx))
}

func (s *StoreSuite) TestCreateAndGetUser() {
	u := s.createUser("abcDEF1234", "ana@example.com", 30)
	s.NotZero(u.ID)
	s.False(u.CreatedAt.IsZero())

	got, err := s.store.Users.GetByIdentifier(s.ctx, "abcDEF1234")
	s.Require().NoError(err)
	s.Equal(u.ID, got.ID)
	s.Equal("ana@example.com", got.Email)
	s.True(got.TotalIncome.IsZero())
	s.True(got.TotalExpense.IsZero())

	_, err = s.store.Users.GetByIdentifier(s.ctx, "missing123")
	s.ErrorIs(err, ErrNotFound)
}

func (s *StoreSuite) TestDuplicates() {
	s.createUser("aaaaaaaaaa", "ana@example.com", 30)

	_, err := s.store.Users.Create(s.ctx, dom.User{Identifier: "bbbbbbbbbb", Name: "B", Age: 20, Email: "ANA@example.com"})
	s.ErrorIs(err, ErrDuplicateEmail)

	_, err = s.store.Users.Create(s.ctx, dom.User{Identifier: "aaaaaaaaaa", Name: "C", Age: 20, Email: "c@example.com"})
	s.ErrorIs(err, ErrDuplicateIdentifier)
}

func (s *StoreSuite) TestExistenceChecks() {
	u := s.createUser("aaaaaaaaaa", "ana@example.com", 30)

	ok, err := s.store.Users.IdentifierExists(s.ctx, "aaaaaaaaaa")
	s.NoError(err)
	s.True(ok)
	ok, err = s.store.Users.IdentifierExists(s.ctx, "zzzzzzzzzz")
	s.NoError(err)
	s.False(ok)

	ok, err = s.store.Users.EmailExists(s.ctx, "Ana@Example.com", 0)
	s.NoError(err)
	s.True(ok)
	ok, err = s.store.Users.EmailExists(s.ctx, "ana@example.com", u.ID)
	s.NoError(err)
	s.False(ok, "the user itself is excluded")
}

func (s *StoreSuite) TestUpdateUser() {
	u := s.createUser("aaaaaaaaaa", "ana@example.com", 30)
	s.createUser("bbbbbbbbbb", "bia@example.com", 25)

	u.Name = "Ana Maria"
	u.Email = "ana.maria@example.com"
	out, err := s.store.Users.Update(s.ctx, u)
	s.Require().NoError(err)
	s.Equal("Ana Maria", out.Name)
	s.Equal("ana.maria@example.com", out.Email)
	s.Equal(30, out.Age)

	u.Email = "bia@example.com"
	_, err = s.store.Users.Update(s.ctx, u)
	s.ErrorIs(err, ErrDuplicateEmail)

	_, err = s.store.Users.Update(s.ctx, dom.User{ID: 999, Name: "x", Email: "x@example.com"})
	s.ErrorIs(err, ErrNotFound)
}

func (s *StoreSuite) TestSummariesAndTotals() {
	ana := s.createUser("aaaaaaaaaa", "ana@example.com", 30)
	bia := s.createUser("bbbbbbbbbb", "bia@example.com", 16)
	s.addTx(ana.ID, dom.KindIncome, "100.10")
	s.addTx(ana.ID, dom.KindExpense, "0.20")
	s.addTx(bia.ID, dom.KindExpense, "5")

	list, err := s.store.Users.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("aaaaaaaaaa", list[0].Identifier)
	s.True(list[0].TotalIncome.Equal(decimal.RequireFromString("100.10")))
	s.True(list[0].TotalExpense.Equal(decimal.RequireFromString("0.20")))
	s.True(list[0].Balance().Equal(decimal.RequireFromString("99.90")))
	s.True(list[1].Balance().Equal(decimal.RequireFromString("-5")))

	totals, err := s.store.Transactions.Totals(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(2), totals.UserCount)
	s.Equal(int64(3), totals.TransactionCount)
	s.True(totals.NetBalance().Equal(decimal.RequireFromString("94.90")))
}

func (s *StoreSuite) TestEmptyTotals() {
	totals, err := s.store.Transactions.Totals(s.ctx)
	s.Require().NoError(err)
	s.Zero(totals.UserCount)
	s.Zero(totals.TransactionCount)
	s.True(totals.NetBalance().IsZero())

	list, err := s.store.Transactions.List(s.ctx)
	s.NoError(err)
	s.NotNil(list)
	s.Empty(list)
}

func (s *StoreSuite) TestListTransactions() {
	ana := s.createUser("aaaaaaaaaa", "ana@example.com", 30)
	bia := s.createUser("bbbbbbbbbb", "bia@example.com", 30)
	first := s.addTx(ana.ID, dom.KindIncome, "10")
	second := s.addTx(bia.ID, dom.KindIncome, "20")

	all, err := s.store.Transactions.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal(second.ID, all[0].ID, "newest first")
	s.Equal(first.ID, all[1].ID)
	s.Equal("bbbbbbbbbb", all[0].UserIdentifier)
	s.Equal("User bbbbbbbbbb", all[0].UserName)

	mine, err := s.store.Transactions.ListByUserIdentifier(s.ctx, ana.Identifier)
	s.Require().NoError(err)
	s.Require().Len(mine, 1)
	s.Equal(dom.KindIncome, mine[0].Kind)
	s.True(mine[0].Amount.Equal(decimal.RequireFromString("10")))

	none, err := s.store.Transactions.ListByUserIdentifier(s.ctx, "nobody0000")
	s.NoError(err)
	s.NotNil(none)
	s.Empty(none)
}

func (s *StoreSuite) TestCreateCheckedPassesSums() {
	ana := s.createUser("aaaaaaaaaa", "ana@example.com", 30)
	s.addTx(ana.ID, dom.KindIncome, "100")
	s.addTx(ana.ID, dom.KindExpense, "30.50")
	s.addTx(ana.ID, dom.KindExpense, "0.01")

	var seen Sums
	rejected := errors.New("rejected")
	_, err := s.store.Transactions.CreateChecked(s.ctx, dom.Transaction{
		Description: "rent", Amount: decimal.RequireFromString("80"), Kind: dom.KindExpense, UserID: ana.ID,
	}, func(sums Sums) error {
		seen = sums
		return rejected
	})
	s.ErrorIs(err, rejected)
	s.True(seen.Income.Equal(decimal.RequireFromString("100")), seen.Income.String())
	s.True(seen.Expense.Equal(decimal.RequireFromString("30.51")), seen.Expense.String())
	s.True(seen.Balance().Equal(decimal.RequireFromString("69.49")), seen.Balance().String())

	list, err := s.store.Transactions.ListByUserIdentifier(s.ctx, ana.Identifier)
	s.NoError(err)
	s.Len(list, 2, "rejected insert must not be stored")
}

func (s *StoreSuite) TestCreateCheckedUnknownUser() {
	_, err := s.store.Transactions.CreateChecked(s.ctx, dom.Transaction{
		Description: "x", Amount: decimal.NewFromInt(1), Kind: dom.KindIncome, UserID: 42,
	}, func(Sums) error { return nil })
	s.ErrorIs(err, ErrNotFound)
}

func (s *StoreSuite) TestDeleteCascades() {
	ana := s.createUser("aaaaaaaaaa", "ana@example.com", 30)
	bia := s.createUser("bbbbbbbbbb", "bia@example.com", 30)
	s.addTx(ana.ID, dom.KindIncome, "10")
	s.addTx(bia.ID, dom.KindIncome, "20")

	s.Require().NoError(s.store.Users.Delete(s.ctx, ana.ID))
	s.ErrorIs(s.store.Users.Delete(s.ctx, ana.ID), ErrNotFound)

	all, err := s.store.Transactions.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Equal(bia.ID, all[0].UserID)
}

func (s *StoreSuite) TestAmountsKeepCents() {
	ana := s.createUser("aaaaaaaaaa", "ana@example.com", 30)
	out := s.addTx(ana.ID, dom.KindIncome, "9999999999999999.99")
	s.Equal("9999999999999999.99", out.Amount.StringFixed(2))

	list, err := s.store.Transactions.ListByUserIdentifier(s.ctx, ana.Identifier)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal("9999999999999999.99", list[0].Amount.StringFixed(2))
}

// Sums of many maximum amounts stay readable for every user and in the
// grand total.
func (s *StoreSuite) TestLargeSums() {
	const maxAmount = "9999999999999999.99"
	ana := s.createUser("aaaaaaaaaa", "ana@example.com", 30)
	bia := s.createUser("bbbbbbbbbb", "bia@example.com", 30)
	for i := 0; i < 9; i++ {
		s.addTx(ana.ID, dom.KindIncome, maxAmount)
		s.addTx(bia.ID, dom.KindIncome, maxAmount)
	}
	s.addTx(ana.ID, dom.KindExpense, maxAmount)

	perUser := decimal.RequireFromString(maxAmount).Mul(decimal.NewFromInt(9))

	list, err := s.store.Users.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.True(list[0].TotalIncome.Equal(perUser), list[0].TotalIncome.String())
	s.True(list[1].Balance().Equal(perUser), list[1].Balance().String())

	totals, err := s.store.Transactions.Totals(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(19), totals.TransactionCount)
	s.True(totals.TotalIncome.Equal(perUser.Mul(decimal.NewFromInt(2))), totals.TotalIncome.String())
	s.True(totals.TotalExpense.Equal(decimal.RequireFromString(maxAmount)))

	var seen Sums
	_, err = s.store.Transactions.CreateChecked(s.ctx, dom.Transaction{
		Description: "x", Amount: decimal.NewFromInt(1), Kind: dom.KindExpense, UserID: ana.ID,
	}, func(sums Sums) error {
		seen = sums
		return nil
	})
	s.Require().NoError(err)
	s.True(seen.Income.Equal(perUser), seen.Income.String())
}
