package repositories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/rommsen/BudgetBuddy-sub000/internal/common"
	"github.com/rommsen/BudgetBuddy-sub000/internal/config"
	"github.com/rommsen/BudgetBuddy-sub000/internal/models"
)

func TestRuleRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(ruleTestSuite))
}

type ruleTestSuite struct {
	suite.Suite
	writeDB *sql.DB
	readDB  *sql.DB
	mock    sqlmock.Sqlmock
	repo    RuleRepository
}

func (suite *ruleTestSuite) SetupTest() {
	var err error
	var cfg config.Config

	suite.writeDB, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.readDB = suite.writeDB

	suite.repo = NewSQLRepository(suite.writeDB, suite.readDB, cfg).GetRuleRepository()
}

func (suite *ruleTestSuite) TearDownTest() {
	defer suite.writeDB.Close()
}

func (suite *ruleTestSuite) TestRepository_CreateRule() {
	in := models.CreateRuleIn{
		Name:         "groceries",
		Pattern:      "REWE",
		Kind:         models.PatternKindContains,
		Field:        models.RuleFieldPayee,
		CategoryID:   "cat-1",
		CategoryName: "Groceries",
		Priority:     10,
		Enabled:      true,
	}

	testCases := []struct {
		name       string
		setupMocks func()
		wantErr    bool
	}{
		{
			name: "success create rule",
			setupMocks: func() {
				rows := sqlmock.NewRows([]string{"id", "createdAt", "updatedAt"}).
					AddRow(uint64(1), time.Now(), time.Now())
				suite.mock.ExpectQuery(regexp.QuoteMeta(queryRuleCreate)).
					WithArgs(in.Name, in.Pattern, in.Kind, in.Field, in.CategoryID, in.CategoryName, in.PayeeOverride, in.Priority, in.Enabled).
					WillReturnRows(rows)
			},
			wantErr: false,
		},
		{
			name: "database error",
			setupMocks: func() {
				suite.mock.ExpectQuery(regexp.QuoteMeta(queryRuleCreate)).
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			tc.setupMocks()

			got, err := suite.repo.Create(context.TODO(), in)
			if tc.wantErr {
				assert.Error(suite.T(), err)
				return
			}

			assert.NoError(suite.T(), err)
			assert.Equal(suite.T(), uint64(1), got.ID)
			assert.Equal(suite.T(), in.Name, got.Name)
			assert.NotNil(suite.T(), got.CreatedAt)
		})
	}
}

func (suite *ruleTestSuite) TestRepository_GetRuleByID() {
	columns := []string{
		"id", "name", "pattern", "patternKind", "field", "categoryId", "categoryName",
		"payeeOverride", "priority", "enabled", "lastMatchedAt", "createdAt", "updatedAt",
	}

	testCases := []struct {
		name       string
		id         uint64
		setupMocks func(id uint64)
		wantErr    error
	}{
		{
			name: "success get rule by id",
			id:   7,
			setupMocks: func(id uint64) {
				rows := sqlmock.NewRows(columns).
					AddRow(id, "groceries", "REWE", "contains", "payee", "cat-1", "Groceries",
						"", 10, true, nil, time.Now(), time.Now())
				suite.mock.ExpectQuery(regexp.QuoteMeta(queryRuleGetByID)).
					WithArgs(id).
					WillReturnRows(rows)
			},
		},
		{
			name: "rule not found",
			id:   99,
			setupMocks: func(id uint64) {
				suite.mock.ExpectQuery(regexp.QuoteMeta(queryRuleGetByID)).
					WithArgs(id).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: common.ErrDataNotFound,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			tc.setupMocks(tc.id)

			got, err := suite.repo.GetByID(context.TODO(), tc.id)
			if tc.wantErr != nil {
				assert.ErrorIs(suite.T(), err, tc.wantErr)
				return
			}

			assert.NoError(suite.T(), err)
			assert.Equal(suite.T(), tc.id, got.ID)
			assert.Nil(suite.T(), got.LastMatchedAt)
		})
	}
}

func (suite *ruleTestSuite) TestRepository_UpdateRule() {
	in := models.UpdateRuleIn{
		ID: 7,
		CreateRuleIn: models.CreateRuleIn{
			Name:         "groceries",
			Pattern:      "^REWE",
			Kind:         models.PatternKindRegex,
			Field:        models.RuleFieldPayee,
			CategoryID:   "cat-1",
			CategoryName: "Groceries",
			Priority:     5,
			Enabled:      true,
		},
	}

	suite.Run("success update rule", func() {
		rows := sqlmock.NewRows([]string{"createdAt", "updatedAt"}).
			AddRow(time.Now(), time.Now())
		suite.mock.ExpectQuery(regexp.QuoteMeta(queryRuleUpdate)).
			WillReturnRows(rows)

		got, err := suite.repo.Update(context.TODO(), in)
		assert.NoError(suite.T(), err)
		assert.Equal(suite.T(), in.ID, got.ID)
		assert.Equal(suite.T(), in.Pattern, got.Pattern)
	})

	suite.Run("rule not found", func() {
		suite.mock.ExpectQuery(regexp.QuoteMeta(queryRuleUpdate)).
			WillReturnError(sql.ErrNoRows)

		_, err := suite.repo.Update(context.TODO(), in)
		assert.ErrorIs(suite.T(), err, common.ErrDataNotFound)
	})
}

func (suite *ruleTestSuite) TestRepository_DeleteRuleByID() {
	suite.Run("success delete rule", func() {
		suite.mock.ExpectExec(regexp.QuoteMeta(queryRuleDeleteByID)).
			WithArgs(uint64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := suite.repo.DeleteByID(context.TODO(), 3)
		assert.NoError(suite.T(), err)
	})

	suite.Run("rule not found", func() {
		suite.mock.ExpectExec(regexp.QuoteMeta(queryRuleDeleteByID)).
			WithArgs(uint64(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := suite.repo.DeleteByID(context.TODO(), 3)
		assert.ErrorIs(suite.T(), err, common.ErrDataNotFound)
	})
}

func (suite *ruleTestSuite) TestRepository_ListRules() {
	columns := []string{
		"id", "name", "pattern", "patternKind", "field", "categoryId", "categoryName",
		"payeeOverride", "priority", "enabled", "lastMatchedAt", "createdAt", "updatedAt",
	}

	suite.Run("success list enabled rules", func() {
		query, _, err := buildListRulesQuery(ruleColumns, models.ListRulesOptions{EnabledOnly: true}).ToSql()
		require.NoError(suite.T(), err)

		rows := sqlmock.NewRows(columns).
			AddRow(uint64(1), "groceries", "REWE", "contains", "payee", "cat-1", "Groceries",
				"", 10, true, nil, time.Now(), time.Now()).
			AddRow(uint64(2), "salary", "ACME", "exact", "payee", "cat-2", "Income",
				"ACME Corp", 20, true, time.Now(), time.Now(), time.Now())
		suite.mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(true).
			WillReturnRows(rows)

		got, err := suite.repo.List(context.TODO(), models.ListRulesOptions{EnabledOnly: true})
		assert.NoError(suite.T(), err)
		require.Len(suite.T(), got, 2)
		assert.Equal(suite.T(), "ACME Corp", got[1].PayeeOverride)
		assert.NotNil(suite.T(), got[1].LastMatchedAt)
	})

	suite.Run("empty result", func() {
		query, _, err := buildListRulesQuery(ruleColumns, models.ListRulesOptions{}).ToSql()
		require.NoError(suite.T(), err)

		suite.mock.ExpectQuery(regexp.QuoteMeta(query)).
			WillReturnRows(sqlmock.NewRows(columns))

		got, err := suite.repo.List(context.TODO(), models.ListRulesOptions{})
		assert.NoError(suite.T(), err)
		assert.Empty(suite.T(), got)
	})
}

func (suite *ruleTestSuite) TestRepository_TouchLastMatched() {
	suite.Run("success touch rules", func() {
		suite.mock.ExpectExec(regexp.QuoteMeta(queryRuleTouchLastMatched)).
			WithArgs(pq.Array([]int64{1, 2})).
			WillReturnResult(sqlmock.NewResult(0, 2))

		err := suite.repo.TouchLastMatched(context.TODO(), []uint64{1, 2})
		assert.NoError(suite.T(), err)
	})

	suite.Run("no ids is a no-op", func() {
		err := suite.repo.TouchLastMatched(context.TODO(), nil)
		assert.NoError(suite.T(), err)
	})
}
