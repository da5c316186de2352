package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/rkabera/momotrack/internal/core/domain"
	portssvc "github.com/rkabera/momotrack/internal/core/ports/services"
	"github.com/rkabera/momotrack/internal/dto"
	"github.com/rkabera/momotrack/internal/handlers"
)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) Stats(ctx context.Context) (*domain.StatsReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatsReport), args.Error(1)
}

func (m *MockReportingService) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.TransactionRecord, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.TransactionRecord), args.Get(1).(int64), args.Error(2)
}

func (m *MockReportingService) TransactionTypes(ctx context.Context) ([]domain.TypeCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TypeCount), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

type ReportingHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockReportingService *MockReportingService
}

func (suite *ReportingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockReportingService = new(MockReportingService)
	handlers.RegisterHandlers(suite.router, suite.mockReportingService)
}

func (suite *ReportingHandlerTestSuite) serve(method, target string) *httptest.ResponseRecorder {
	req, err := http.NewRequest(method, target, nil)
	suite.Require().NoError(err)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ReportingHandlerTestSuite) TestGetStatsSuccess() {
	report := &domain.StatsReport{
		TotalTransactions: 42,
		TotalAmount:       decimal.RequireFromString("123450"),
		TotalFees:         decimal.RequireFromString("900"),
		TypeBreakdown: []domain.TypeBreakdown{
			{TransactionType: domain.TypeIncomingMoney, Count: 10, TotalAmount: decimal.RequireFromString("50000")},
		},
		MonthlyStats: []domain.MonthlyStat{
			{Month: "2024-05", TransactionCount: 42, TotalAmount: decimal.RequireFromString("123450"), TotalFees: decimal.RequireFromString("900")},
		},
	}
	suite.mockReportingService.On("Stats", mock.Anything).Return(report, nil).Once()

	w := suite.serve(http.MethodGet, "/api/stats")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.StatsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(42), resp.TotalTransactions)
	suite.Len(resp.TransactionTypes, 1)
	suite.Equal(string(domain.TypeIncomingMoney), resp.TransactionTypes[0].TransactionType)
	suite.Len(resp.MonthlyStats, 1)
	suite.Equal("2024-05", resp.MonthlyStats[0].Month)

	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestGetStatsServiceError() {
	suite.mockReportingService.On("Stats", mock.Anything).Return(nil, errors.New("db down")).Once()

	w := suite.serve(http.MethodGet, "/api/stats")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestListTransactionsDefaults() {
	records := []domain.TransactionRecord{
		{TransactionType: domain.TypeIncomingMoney, DateTimestamp: 1715000000000, MessageBody: "You have received 5,000 RWF"},
	}
	suite.mockReportingService.On("ListTransactions", mock.Anything,
		mock.MatchedBy(func(f domain.TransactionFilter) bool {
			return f.Page == 1 && f.Limit == 50 && f.Type == nil && f.Search == nil
		})).Return(records, int64(1), nil).Once()

	w := suite.serve(http.MethodGet, "/api/transactions")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Transactions, 1)
	suite.Equal(1, resp.Pagination.Page)
	suite.Equal(50, resp.Pagination.Limit)
	suite.Equal(int64(1), resp.Pagination.Total)
	suite.Equal(int64(1), resp.Pagination.TotalPages)

	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestListTransactionsWithFilters() {
	suite.mockReportingService.On("ListTransactions", mock.Anything,
		mock.MatchedBy(func(f domain.TransactionFilter) bool {
			if f.Type == nil || *f.Type != domain.TypeTransferToMobile {
				return false
			}
			if f.StartDate == nil || f.EndDate == nil || *f.StartDate >= *f.EndDate {
				return false
			}
			if f.MinAmount == nil || !f.MinAmount.Equal(decimal.RequireFromString("100")) {
				return false
			}
			return f.Search != nil && *f.Search == "Alice" && f.Page == 2 && f.Limit == 10
		})).Return([]domain.TransactionRecord{}, int64(25), nil).Once()

	w := suite.serve(http.MethodGet,
		"/api/transactions?type=TRANSFER_TO_MOBILE&startDate=2024-05-01&endDate=2024-05-31&minAmount=100&search=Alice&page=2&limit=10")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(3), resp.Pagination.TotalPages, "25 rows at limit 10 is 3 pages")

	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestListTransactionsTypeAllMeansNoFilter() {
	suite.mockReportingService.On("ListTransactions", mock.Anything,
		mock.MatchedBy(func(f domain.TransactionFilter) bool {
			return f.Type == nil
		})).Return([]domain.TransactionRecord{}, int64(0), nil).Once()

	w := suite.serve(http.MethodGet, "/api/transactions?type=all")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestListTransactionsInvalidType() {
	w := suite.serve(http.MethodGet, "/api/transactions?type=NOT_A_TYPE")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReportingService.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *ReportingHandlerTestSuite) TestListTransactionsInvalidDate() {
	w := suite.serve(http.MethodGet, "/api/transactions?startDate=05-01-2024")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReportingService.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *ReportingHandlerTestSuite) TestListTransactionsLimitTooLarge() {
	w := suite.serve(http.MethodGet, "/api/transactions?limit=1000")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReportingService.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *ReportingHandlerTestSuite) TestListTransactionTypes() {
	counts := []domain.TypeCount{
		{TypeName: domain.TypeIncomingMoney, Count: 12},
		{TypeName: domain.TypePaymentToCode, Count: 7},
	}
	suite.mockReportingService.On("TransactionTypes", mock.Anything).Return(counts, nil).Once()

	w := suite.serve(http.MethodGet, "/api/transaction-types")

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.TransactionTypeResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.Equal("INCOMING_MONEY", resp[0].TypeName)
	suite.NotEmpty(resp[0].Description)
	suite.Equal(int64(12), resp[0].Count)

	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestGetHome() {
	w := suite.serve(http.MethodGet, "/")

	suite.Equal(http.StatusOK, w.Code)
	var body map[string]string
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("ok", body["status"])
}

func TestReportingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingHandlerTestSuite))
}
