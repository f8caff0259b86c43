package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/akerley/pocketledger/internal/apperrors"
	"github.com/akerley/pocketledger/internal/core/domain"
	portsrepo "github.com/akerley/pocketledger/internal/core/ports/repositories"
	portssvc "github.com/akerley/pocketledger/internal/core/ports/services"
	"github.com/akerley/pocketledger/internal/dto"
	"github.com/akerley/pocketledger/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// walletService implements the WalletSvcFacade interface.
type walletService struct {
	BaseService
	ledgerRepo      portsrepo.LedgerRepositoryFacade
	settingsRepo    portsrepo.SettingsRepository
	defaultCurrency domain.Currency
}

// NewWalletService creates a new wallet service. defaultCurrency is the
// configured fallback for wallets created without a currency when the
// profile has none either; an unsupported value degrades to USD.
func NewWalletService(ledgerRepo portsrepo.LedgerRepositoryFacade, settingsRepo portsrepo.SettingsRepository, defaultCurrency domain.Currency) portssvc.WalletSvcFacade {
	if !defaultCurrency.IsValid() {
		defaultCurrency = domain.CurrencyUSD
	}
	return &walletService{
		ledgerRepo:      ledgerRepo,
		settingsRepo:    settingsRepo,
		defaultCurrency: defaultCurrency,
	}
}

var _ portssvc.WalletSvcFacade = (*walletService)(nil)

func (s *walletService) CreateWallet(ctx context.Context, req dto.CreateWalletRequest) (*domain.Wallet, error) {
	logger := s.GetLogger(ctx)

	currency, err := s.resolveCurrency(ctx, req.Currency)
	if err != nil {
		return nil, err
	}

	initial := decimal.Zero
	if req.InitialAmount != nil {
		initial = *req.InitialAmount
	}

	now := time.Now()
	wallet := domain.Wallet{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Currency:      currency,
		Amount:        initial,
		InitialAmount: initial,
		Image:         req.Image,
		Created:       now,
		Updated:       now,
	}

	// LoadLedger rather than LoadWallets so legacy baselines are settled
	// before the collection is written back.
	ledger, err := s.ledgerRepo.LoadLedger(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger for wallet creation")
		return nil, err
	}
	ledger.Wallets = append(ledger.Wallets, wallet)

	if err := s.ledgerRepo.SaveWallets(ctx, ledger.Wallets); err != nil {
		s.LogError(ctx, err, "Failed to save wallets", slog.String("wallet_id", wallet.ID))
		return nil, err
	}

	logger.Info("Wallet created", slog.String("wallet_id", wallet.ID), slog.String("currency", string(currency)))
	return &wallet, nil
}

func (s *walletService) UpdateWallet(ctx context.Context, walletID string, req dto.UpdateWalletRequest) (*domain.Wallet, error) {
	ledger, err := s.ledgerRepo.LoadLedger(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger for wallet update")
		return nil, err
	}

	wallet := ledger.WalletByID(walletID)
	if wallet == nil {
		return nil, fmt.Errorf("%w: wallet %q", apperrors.ErrNotFound, walletID)
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: wallet name must not be empty", apperrors.ErrValidation)
		}
		wallet.Name = *req.Name
	}
	if req.Currency != nil {
		currency := domain.Currency(*req.Currency)
		if !currency.IsValid() {
			return nil, fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, *req.Currency)
		}
		wallet.Currency = currency
	}
	if req.Image != nil {
		wallet.Image = *req.Image
	}
	wallet.Updated = time.Now()

	if err := s.ledgerRepo.SaveWallets(ctx, ledger.Wallets); err != nil {
		s.LogError(ctx, err, "Failed to save wallets", slog.String("wallet_id", walletID))
		return nil, err
	}

	s.LogInfo(ctx, "Wallet updated", slog.String("wallet_id", walletID))
	updated := *wallet
	return &updated, nil
}

func (s *walletService) GetWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	ledger, err := s.ledgerRepo.LoadLedger(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger", slog.String("wallet_id", walletID))
		return nil, err
	}

	wallet := ledger.WalletByID(walletID)
	if wallet == nil {
		return nil, fmt.Errorf("%w: wallet %q", apperrors.ErrNotFound, walletID)
	}
	cp := *wallet
	return &cp, nil
}

func (s *walletService) ListWallets(ctx context.Context) ([]domain.Wallet, error) {
	ledger, err := s.ledgerRepo.LoadLedger(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger for wallet listing")
		return nil, err
	}
	return ledger.Wallets, nil
}

// GetWalletSummary derives the dashboard values for one wallet from the
// current snapshot. Nothing here is persisted.
func (s *walletService) GetWalletSummary(ctx context.Context, walletID string) (*dto.WalletSummaryResponse, error) {
	ledger, err := s.ledgerRepo.LoadLedger(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger for wallet summary")
		return nil, err
	}

	wallet := ledger.WalletByID(walletID)
	if wallet == nil {
		return nil, fmt.Errorf("%w: wallet %q", apperrors.ErrNotFound, walletID)
	}

	totals := accounting.ComputeWalletTotals(ledger.Transactions, walletID)
	last := accounting.LastTransaction(ledger.Transactions, walletID)
	usage := accounting.UsedCategories(ledger.Transactions, walletID, wallet.Amount)

	summary := &dto.WalletSummaryResponse{
		WalletID:     walletID,
		TotalIncome:  totals.TotalIncome,
		TotalExpense: totals.TotalExpense,
		Categories:   make([]dto.CategoryUsageResponse, 0, len(usage)),
	}

	for _, row := range usage {
		summary.Categories = append(summary.Categories, dto.CategoryUsageResponse{
			Category:     row.Category,
			Type:         row.Type,
			Total:        row.Total,
			Count:        row.Count,
			UsagePercent: row.UsagePercent,
		})
	}

	if last != nil {
		lastResp := dto.ToTransactionResponse(last)
		summary.LastTransaction = &lastResp
	}
	if trend := accounting.ComputeTrend(last, totals); trend != nil {
		summary.Trend = &dto.TrendResponse{Percent: trend.Percent, Direction: trend.Direction}
	}

	return summary, nil
}

// resolveCurrency picks the request currency, falling back to the profile's
// default and then the configured default.
func (s *walletService) resolveCurrency(ctx context.Context, requested string) (domain.Currency, error) {
	if requested != "" {
		currency := domain.Currency(requested)
		if !currency.IsValid() {
			return "", fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, requested)
		}
		return currency, nil
	}

	profile, err := s.settingsRepo.LoadProfile(ctx)
	if err != nil {
		return "", err
	}
	if profile.DefaultCurrency != "" && profile.DefaultCurrency.IsValid() {
		return profile.DefaultCurrency, nil
	}
	return s.defaultCurrency, nil
}
