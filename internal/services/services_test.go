package services_test

import (
	"os"
	"testing"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	mockBank "github.com/rommsen/BudgetBuddy-sub000/internal/common/bank/mock"
	mockIDGenerator "github.com/rommsen/BudgetBuddy-sub000/internal/common/idgenerator/mock"
	mockLedger "github.com/rommsen/BudgetBuddy-sub000/internal/common/ledger/mock"
	mockMetrics "github.com/rommsen/BudgetBuddy-sub000/internal/common/metrics/mock"
	"github.com/rommsen/BudgetBuddy-sub000/internal/config"
	"github.com/rommsen/BudgetBuddy-sub000/internal/repositories/mock"
	"github.com/rommsen/BudgetBuddy-sub000/internal/services"
)

func TestMain(m *testing.M) {
	zap.ReplaceGlobals(zap.NewNop())
	os.Exit(m.Run())
}

type testServiceHelper struct {
	mockCtrl              *gomock.Controller
	config                config.Config
	mockSQLRepository     *mock.MockSQLRepository
	mockRuleRepository    *mock.MockRuleRepository
	mockSettingRepository *mock.MockSettingRepository
	mockBankClient        *mockBank.MockClient
	mockLedgerClient      *mockLedger.MockClient
	mockIDGenerator       *mockIDGenerator.MockGenerator
	mockMetrics           *mockMetrics.MockMetrics

	ruleService       services.RuleService
	settingService    services.SettingService
	syncService       services.SyncService
	duplicateDetector services.DuplicateDetector
	importBuilder     services.ImportBuilderService
}

func serviceTestHelper(t *testing.T) testServiceHelper {
	t.Helper()
	t.Parallel()

	mockCtrl := gomock.NewController(t)

	cfg := config.Config{}
	cfg.Bank.AccountRef = "DE02100100100006820101"
	cfg.Ledger.BudgetID = "budget-1"
	cfg.Ledger.AccountID = "account-1"
	cfg.Sync.FetchWindowDays = config.DefaultFetchWindowDays
	cfg.Sync.DateToleranceDays = config.DefaultDateToleranceDays
	cfg.Sync.MemoLimit = config.DefaultMemoLimit

	mockSQLRepository := mock.NewMockSQLRepository(mockCtrl)
	mockRuleRepository := mock.NewMockRuleRepository(mockCtrl)
	mockSettingRepository := mock.NewMockSettingRepository(mockCtrl)
	mockBankClient := mockBank.NewMockClient(mockCtrl)
	mockLedgerClient := mockLedger.NewMockClient(mockCtrl)
	mockIDGen := mockIDGenerator.NewMockGenerator(mockCtrl)
	mockMetricsClient := mockMetrics.NewMockMetrics(mockCtrl)

	srv := services.New(
		cfg,
		mockSQLRepository,
		mockSettingRepository,
		mockBankClient,
		mockLedgerClient,
		mockIDGen,
		mockMetricsClient,
	)

	return testServiceHelper{
		mockCtrl:              mockCtrl,
		config:                cfg,
		mockSQLRepository:     mockSQLRepository,
		mockRuleRepository:    mockRuleRepository,
		mockSettingRepository: mockSettingRepository,
		mockBankClient:        mockBankClient,
		mockLedgerClient:      mockLedgerClient,
		mockIDGenerator:       mockIDGen,
		mockMetrics:           mockMetricsClient,

		ruleService:       srv.Rule,
		settingService:    srv.Setting,
		syncService:       srv.Sync,
		duplicateDetector: srv.Duplicate,
		importBuilder:     srv.ImportBuilder,
	}
}
