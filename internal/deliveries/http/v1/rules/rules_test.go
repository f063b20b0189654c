package rules

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/rommsen/BudgetBuddy-sub000/internal/models"
	"github.com/rommsen/BudgetBuddy-sub000/internal/services/mock"
)

func Test_Handler_createRule(t *testing.T) {
	testHelper := ruleTestHelper(t)

	type args struct {
		ctx context.Context
		req models.CreateRuleRequest
	}
	type mockData struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name      string
		urlCalled string
		args      args
		mockData  mockData
		doMock    func(args args, mockData mockData)
	}{
		{
			name:      "success",
			urlCalled: "/api/v1/rules",
			args: args{
				ctx: context.Background(),
				req: models.CreateRuleRequest{
					Name:         "groceries",
					Pattern:      "REWE",
					PatternKind:  "contains",
					Field:        "payee",
					CategoryID:   "cat-groceries",
					CategoryName: "Groceries",
					Enabled:      true,
				},
			},
			mockData: mockData{
				wantRes:  `{"kind":"rule","id":1,"name":"groceries","pattern":"REWE","patternKind":"contains","field":"payee","categoryId":"cat-groceries","categoryName":"Groceries","priority":0,"enabled":true,"lastMatchedAt":null,"createdAt":null,"updatedAt":null}`,
				wantCode: 201,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockService.EXPECT().Create(args.ctx, args.req.ConvertToCreateRuleIn()).Return(&models.RuleOut{
					Kind:         "rule",
					ID:           1,
					Name:         args.req.Name,
					Pattern:      args.req.Pattern,
					PatternKind:  models.PatternKind(args.req.PatternKind),
					Field:        models.RuleField(args.req.Field),
					CategoryID:   args.req.CategoryID,
					CategoryName: args.req.CategoryName,
					Enabled:      true,
				}, nil)
			},
		},
		{
			name:      "error validating request",
			urlCalled: "/api/v1/rules",
			args: args{
				ctx: context.Background(),
				req: models.CreateRuleRequest{
					Pattern:      "REWE",
					PatternKind:  "glob",
					Field:        "payee",
					CategoryID:   "cat-groceries",
					CategoryName: "Groceries",
				},
			},
			mockData: mockData{
				wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"REQUIRED","field":"name","message":"failed on required"},{"code":"ONEOF","field":"patternKind","message":"failed on oneof contains exact regex"}]}`,
				wantCode: 422,
			},
		},
		{
			name:      "error pattern does not compile",
			urlCalled: "/api/v1/rules",
			args: args{
				ctx: context.Background(),
				req: models.CreateRuleRequest{
					Name:         "broken",
					Pattern:      "(unclosed",
					PatternKind:  "regex",
					Field:        "payee",
					CategoryID:   "cat-misc",
					CategoryName: "Misc",
				},
			},
			mockData: mockData{
				wantRes:  `{"status":"error","code":"RULE_PATTERN_INVALID","message":"pattern does not compile under its declared kind"}`,
				wantCode: 422,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockService.EXPECT().Create(args.ctx, args.req.ConvertToCreateRuleIn()).
					Return(nil, models.GetErrMap(models.ErrKeyRulePatternInvalid))
			},
		},
		{
			name:      "error service",
			urlCalled: "/api/v1/rules",
			args: args{
				ctx: context.Background(),
				req: models.CreateRuleRequest{
					Name:         "groceries",
					Pattern:      "REWE",
					PatternKind:  "contains",
					Field:        "payee",
					CategoryID:   "cat-groceries",
					CategoryName: "Groceries",
				},
			},
			mockData: mockData{
				wantRes:  `{"status":"error","code":500,"message":"assert.AnError general error for testing"}`,
				wantCode: 500,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockService.EXPECT().Create(args.ctx, args.req.ConvertToCreateRuleIn()).Return(nil, assert.AnError)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args, tt.mockData)
			}

			var b bytes.Buffer
			err := json.NewEncoder(&b).Encode(tt.args.req)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, tt.urlCalled, &b)
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.mockData.wantCode, resp.StatusCode)
			require.Equal(t, tt.mockData.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}

func Test_Handler_listRules(t *testing.T) {
	testHelper := ruleTestHelper(t)

	type mockData struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name      string
		urlCalled string
		mockData  mockData
		doMock    func(mockData mockData)
	}{
		{
			name:      "success",
			urlCalled: "/api/v1/rules",
			mockData: mockData{
				wantRes:  `{"kind":"collection","contents":[{"kind":"rule","id":1,"name":"groceries","pattern":"REWE","patternKind":"contains","field":"payee","categoryId":"cat-groceries","categoryName":"Groceries","priority":0,"enabled":true,"lastMatchedAt":null,"createdAt":null,"updatedAt":null}],"total_rows":1}`,
				wantCode: 200,
			},
			doMock: func(mockData mockData) {
				testHelper.mockService.EXPECT().List(context.Background(), models.ListRulesOptions{}).Return([]*models.RuleOut{
					{
						Kind:         "rule",
						ID:           1,
						Name:         "groceries",
						Pattern:      "REWE",
						PatternKind:  models.PatternKindContains,
						Field:        models.RuleFieldPayee,
						CategoryID:   "cat-groceries",
						CategoryName: "Groceries",
						Enabled:      true,
					},
				}, nil)
			},
		},
		{
			name:      "success enabled only",
			urlCalled: "/api/v1/rules?enabled=true",
			mockData: mockData{
				wantRes:  `{"kind":"collection","contents":[],"total_rows":0}`,
				wantCode: 200,
			},
			doMock: func(mockData mockData) {
				testHelper.mockService.EXPECT().List(context.Background(), models.ListRulesOptions{EnabledOnly: true}).
					Return([]*models.RuleOut{}, nil)
			},
		},
		{
			name:      "error service",
			urlCalled: "/api/v1/rules",
			mockData: mockData{
				wantRes:  `{"status":"error","code":500,"message":"assert.AnError general error for testing"}`,
				wantCode: 500,
			},
			doMock: func(mockData mockData) {
				testHelper.mockService.EXPECT().List(context.Background(), models.ListRulesOptions{}).Return(nil, assert.AnError)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.mockData)
			}

			req := httptest.NewRequest(http.MethodGet, tt.urlCalled, nil)
			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.mockData.wantCode, resp.StatusCode)
			require.Equal(t, tt.mockData.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}

func Test_Handler_getRule(t *testing.T) {
	testHelper := ruleTestHelper(t)

	type mockData struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name      string
		urlCalled string
		mockData  mockData
		doMock    func(mockData mockData)
	}{
		{
			name:      "success",
			urlCalled: "/api/v1/rules/7",
			mockData: mockData{
				wantRes:  `{"kind":"rule","id":7,"name":"salary","pattern":"ACME","patternKind":"exact","field":"payee","categoryId":"cat-income","categoryName":"Income","priority":2,"enabled":true,"lastMatchedAt":null,"createdAt":null,"updatedAt":null}`,
				wantCode: 200,
			},
			doMock: func(mockData mockData) {
				testHelper.mockService.EXPECT().Get(context.Background(), uint64(7)).Return(&models.RuleOut{
					Kind:         "rule",
					ID:           7,
					Name:         "salary",
					Pattern:      "ACME",
					PatternKind:  models.PatternKindExact,
					Field:        models.RuleFieldPayee,
					CategoryID:   "cat-income",
					CategoryName: "Income",
					Priority:     2,
					Enabled:      true,
				}, nil)
			},
		},
		{
			name:      "error rule not found",
			urlCalled: "/api/v1/rules/99",
			mockData: mockData{
				wantRes:  `{"status":"error","code":"RULE_NOT_FOUND","message":"rule not found"}`,
				wantCode: 404,
			},
			doMock: func(mockData mockData) {
				testHelper.mockService.EXPECT().Get(context.Background(), uint64(99)).
					Return(nil, models.GetErrMap(models.ErrKeyRuleNotFound))
			},
		},
		{
			name:      "error invalid id",
			urlCalled: "/api/v1/rules/abc",
			mockData: mockData{
				wantRes:  `{"status":"error","code":400,"message":"strconv.ParseUint: parsing \"abc\": invalid syntax"}`,
				wantCode: 400,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.mockData)
			}

			req := httptest.NewRequest(http.MethodGet, tt.urlCalled, nil)
			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.mockData.wantCode, resp.StatusCode)
			require.Equal(t, tt.mockData.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}

func Test_Handler_updateRule(t *testing.T) {
	testHelper := ruleTestHelper(t)

	type args struct {
		ctx context.Context
		req models.CreateRuleRequest
	}
	type mockData struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name      string
		urlCalled string
		args      args
		mockData  mockData
		doMock    func(args args, mockData mockData)
	}{
		{
			name:      "success",
			urlCalled: "/api/v1/rules/3",
			args: args{
				ctx: context.Background(),
				req: models.CreateRuleRequest{
					Name:         "groceries",
					Pattern:      "EDEKA",
					PatternKind:  "contains",
					Field:        "payee",
					CategoryID:   "cat-groceries",
					CategoryName: "Groceries",
					Priority:     1,
					Enabled:      true,
				},
			},
			mockData: mockData{
				wantRes:  `{"kind":"rule","id":3,"name":"groceries","pattern":"EDEKA","patternKind":"contains","field":"payee","categoryId":"cat-groceries","categoryName":"Groceries","priority":1,"enabled":true,"lastMatchedAt":null,"createdAt":null,"updatedAt":null}`,
				wantCode: 200,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockService.EXPECT().Update(args.ctx, models.UpdateRuleIn{
					ID:           3,
					CreateRuleIn: args.req.ConvertToCreateRuleIn(),
				}).Return(&models.RuleOut{
					Kind:         "rule",
					ID:           3,
					Name:         args.req.Name,
					Pattern:      args.req.Pattern,
					PatternKind:  models.PatternKind(args.req.PatternKind),
					Field:        models.RuleField(args.req.Field),
					CategoryID:   args.req.CategoryID,
					CategoryName: args.req.CategoryName,
					Priority:     args.req.Priority,
					Enabled:      true,
				}, nil)
			},
		},
		{
			name:      "error rule not found",
			urlCalled: "/api/v1/rules/42",
			args: args{
				ctx: context.Background(),
				req: models.CreateRuleRequest{
					Name:         "gone",
					Pattern:      "GONE",
					PatternKind:  "contains",
					Field:        "memo",
					CategoryID:   "cat-misc",
					CategoryName: "Misc",
				},
			},
			mockData: mockData{
				wantRes:  `{"status":"error","code":"RULE_NOT_FOUND","message":"rule not found"}`,
				wantCode: 404,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockService.EXPECT().Update(args.ctx, models.UpdateRuleIn{
					ID:           42,
					CreateRuleIn: args.req.ConvertToCreateRuleIn(),
				}).Return(nil, models.GetErrMap(models.ErrKeyRuleNotFound))
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args, tt.mockData)
			}

			var b bytes.Buffer
			err := json.NewEncoder(&b).Encode(tt.args.req)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPut, tt.urlCalled, &b)
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.mockData.wantCode, resp.StatusCode)
			require.Equal(t, tt.mockData.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}

func Test_Handler_deleteRule(t *testing.T) {
	testHelper := ruleTestHelper(t)

	type mockData struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name      string
		urlCalled string
		mockData  mockData
		doMock    func(mockData mockData)
	}{
		{
			name:      "success",
			urlCalled: "/api/v1/rules/5",
			mockData: mockData{
				wantRes:  ``,
				wantCode: 204,
			},
			doMock: func(mockData mockData) {
				testHelper.mockService.EXPECT().Delete(context.Background(), uint64(5)).Return(nil)
			},
		},
		{
			name:      "error rule not found",
			urlCalled: "/api/v1/rules/5",
			mockData: mockData{
				wantRes:  `{"status":"error","code":"RULE_NOT_FOUND","message":"rule not found"}`,
				wantCode: 404,
			},
			doMock: func(mockData mockData) {
				testHelper.mockService.EXPECT().Delete(context.Background(), uint64(5)).
					Return(models.GetErrMap(models.ErrKeyRuleNotFound))
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.mockData)
			}

			req := httptest.NewRequest(http.MethodDelete, tt.urlCalled, nil)
			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.mockData.wantCode, resp.StatusCode)
			require.Equal(t, tt.mockData.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}

type testRuleHelper struct {
	router      *echo.Echo
	mockCtrl    *gomock.Controller
	mockService *mock.MockRuleService
}

func ruleTestHelper(t *testing.T) testRuleHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)

	mockSvc := mock.NewMockRuleService(mockCtrl)

	app := echo.New()
	app.Pre(echomiddleware.RemoveTrailingSlash())
	v1Group := app.Group("/api/v1")
	New(v1Group, mockSvc)

	return testRuleHelper{
		router:      app,
		mockCtrl:    mockCtrl,
		mockService: mockSvc,
	}
}

func TestMain(m *testing.M) {
	zap.ReplaceGlobals(zap.NewNop())
	os.Exit(m.Run())
}
