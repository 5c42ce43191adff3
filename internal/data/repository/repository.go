package repository

import (
	"fmt"
	"strings"

	"marketplace-api/internal/data/entity"
	"marketplace-api/pkg/database"

	"go.uber.org/zap"
)

// notDeleted is the only place the soft-delete column is filtered on.
const notDeleted = "deleted_at IS NULL"

// uniqueViolation is the Postgres SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

type Repository struct {
	Admin    AccountRepository
	Member   AccountRepository
	Seller   AccountRepository
	Guest    AccountRepository
	Channel  ChannelRepository
	Product  ProductRepository
	Coupon   CouponRepository
	Sale     SaleRepository
	Payment  PaymentRepository
	Delivery DeliveryRepository
	Deposit  DepositRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Admin:    NewAccountRepository(db, entity.RoleAdmin, log),
		Member:   NewAccountRepository(db, entity.RoleMember, log),
		Seller:   NewAccountRepository(db, entity.RoleSeller, log),
		Guest:    NewAccountRepository(db, entity.RoleGuest, log),
		Channel:  NewChannelRepository(db, log),
		Product:  NewProductRepository(db, log),
		Coupon:   NewCouponRepository(db, log),
		Sale:     NewSaleRepository(db, log),
		Payment:  NewPaymentRepository(db, log),
		Delivery: NewDeliveryRepository(db, log),
		Deposit:  NewDepositRepository(db, log),
	}
}

// Accounts returns the account repository backing role.
func (r *Repository) Accounts(role entity.RoleType) AccountRepository {
	switch role {
	case entity.RoleAdmin:
		return r.Admin
	case entity.RoleMember:
		return r.Member
	case entity.RoleSeller:
		return r.Seller
	case entity.RoleGuest:
		return r.Guest
	}
	return nil
}

// conditions accumulates WHERE clauses with positional args.
type conditions struct {
	clauses []string
	args    []any
}

func (c *conditions) raw(clause string) {
	c.clauses = append(c.clauses, clause)
}

// add appends a clause whose single %d is replaced by the next placeholder index.
func (c *conditions) add(format string, arg any) {
	c.args = append(c.args, arg)
	c.clauses = append(c.clauses, fmt.Sprintf(format, len(c.args)))
}

func (c *conditions) where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.clauses, " AND ")
}

// page returns the LIMIT/OFFSET suffix and the full argument list.
func (c *conditions) page(limit, offset int) (string, []any) {
	n := len(c.args)
	args := append(append([]any{}, c.args...), limit, offset)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", n+1, n+2), args
}
