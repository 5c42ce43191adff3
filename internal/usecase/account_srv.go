package usecase

import (
	"context"
	"time"

	"marketplace-api/internal/data/entity"
	"marketplace-api/internal/dto/request"
	"marketplace-api/internal/dto/response"
	"marketplace-api/pkg/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AccountService covers the four account tables. Every method takes the role
// whose table it operates on.
type AccountService interface {
	GetProfile(ctx context.Context, role entity.RoleType, accountID uuid.UUID) (*response.AccountDetail, error)
	GetAccounts(ctx context.Context, role entity.RoleType, req *request.PaginatedRequest) (*response.AccountPage, error)
	GetAccountByID(ctx context.Context, role entity.RoleType, accountID string) (*response.AccountDetail, error)
	UpdateAccountStatus(ctx context.Context, role entity.RoleType, accountID string, req *request.UpdateAccountStatusRequest) error
	DeleteAccount(ctx context.Context, role entity.RoleType, accountID string) error
}

type accountService struct {
	repo AccountLookup
	now  clock
	log  *zap.Logger
}

func NewAccountService(repo AccountLookup, log *zap.Logger) AccountService {
	return &accountService{
		repo: repo,
		now:  time.Now,
		log:  log.With(zap.String("service", "account")),
	}
}

func (s *accountService) GetProfile(ctx context.Context, role entity.RoleType, accountID uuid.UUID) (*response.AccountDetail, error) {
	account, err := s.repo.Accounts(role).FindByID(ctx, accountID)
	if err != nil {
		return nil, apperror.Internal("failed to get profile", err)
	}
	if account == nil {
		// authorized a moment ago, deleted since
		return nil, apperror.NotFound("Account not found")
	}

	detail := response.AccountToDetail(account)
	return &detail, nil
}

func (s *accountService) GetAccounts(ctx context.Context, role entity.RoleType, req *request.PaginatedRequest) (*response.AccountPage, error) {
	repo := s.repo.Accounts(role)
	return listPage(ctx, s.log, string(role)+" accounts", req,
		repo.FindAll,
		repo.CountAll,
		response.AccountToSummary,
	)
}

func (s *accountService) GetAccountByID(ctx context.Context, role entity.RoleType, accountID string) (*response.AccountDetail, error) {
	id, err := parseID(accountID, "account")
	if err != nil {
		s.log.Warn("Invalid account ID format", zap.String("account_id", accountID))
		return nil, err
	}

	account, err := s.repo.Accounts(role).FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal("failed to get account", err)
	}
	if account == nil {
		return nil, apperror.NotFound("Account not found")
	}

	detail := response.AccountToDetail(account)
	return &detail, nil
}

func (s *accountService) UpdateAccountStatus(ctx context.Context, role entity.RoleType, accountID string, req *request.UpdateAccountStatusRequest) error {
	id, err := parseID(accountID, "account")
	if err != nil {
		return err
	}

	status := entity.AccountStatus(req.Status)
	if err := s.repo.Accounts(role).UpdateStatus(ctx, id, status, s.now()); err != nil {
		return internalUnlessApp(err, "failed to update account status")
	}

	s.log.Info("Account status updated",
		zap.String("role", string(role)),
		zap.String("account_id", accountID),
		zap.String("status", req.Status),
	)

	return nil
}

// DeleteAccount looks the account up by id alone, then stamps deleted_at.
// An already deleted account gets a fresh timestamp.
func (s *accountService) DeleteAccount(ctx context.Context, role entity.RoleType, accountID string) error {
	id, err := parseID(accountID, "account")
	if err != nil {
		s.log.Warn("Invalid account ID format", zap.String("account_id", accountID))
		return err
	}

	repo := s.repo.Accounts(role)
	account, err := repo.FindUniqueOrThrow(ctx, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			s.log.Warn("Account to delete not found",
				zap.String("role", string(role)),
				zap.String("account_id", accountID),
			)
		}
		return internalUnlessApp(err, "failed to get account")
	}

	at := s.now()
	if err := repo.SoftDelete(ctx, account.ID, at); err != nil {
		return internalUnlessApp(err, "failed to delete account")
	}

	s.log.Info("Account soft deleted",
		zap.String("role", string(role)),
		zap.String("account_id", accountID),
		zap.Bool("was_deleted", account.Lifecycle.IsDeleted()),
		zap.Time("deleted_at", at),
	)

	return nil
}
