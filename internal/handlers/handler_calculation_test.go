package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	portssvc "github.com/gallusnever/asc842-calculator/internal/core/ports/services"
	"github.com/gallusnever/asc842-calculator/internal/core/services"
	"github.com/gallusnever/asc842-calculator/internal/dto"
	"github.com/gallusnever/asc842-calculator/internal/handlers"
	"github.com/gallusnever/asc842-calculator/internal/middleware"
	"github.com/gallusnever/asc842-calculator/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

const testTermsSecret = "handler-test-secret"

type HandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:                "8080",
		IsProduction:        true, // skips swagger registration
		TermsSecret:         testTermsSecret,
		TermsExpiryDuration: time.Hour,
		RateLimit:           "1000-M",
		CORSAllowOrigins:    []string{"http://localhost:3000"},
	}

	container := &portssvc.ServiceContainer{
		Calculation: services.NewCalculationService(),
		Treasury:    services.NewTreasuryService(),
		Export:      services.NewExportService(),
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container)
}

// request performs a JSON request, attaching a valid terms cookie unless the
// test opts out.
func (suite *HandlerTestSuite) request(method, path string, body any, withTerms bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if withTerms {
		token, err := middleware.IssueAcceptanceToken(testTermsSecret, time.Hour, time.Now())
		suite.Require().NoError(err)
		req.AddCookie(&http.Cookie{Name: middleware.TermsCookieName, Value: token})
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func validBody() map[string]any {
	return map[string]any{
		"lease_commencement_date": "2024-01-01",
		"monthly_payment":         1000,
		"lease_term_months":       60,
		"payment_timing":          "ARREARS",
		"discount_rate":           0.06,
	}
}

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.request(http.MethodGet, "/health", nil, false)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestUnifiedCalculation() {
	w := suite.request(http.MethodPost, "/api/unified-calculation", validBody(), true)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp dto.CalculationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal("Operating", string(resp.Classification.LeaseType))
	suite.Len(resp.AmortizationSchedule, 60)
	suite.Len(resp.JournalEntries.Periodic, 60)
	suite.InDelta(51725.56, resp.InitialRecognition.LeaseLiability.InexactFloat64(), 0.01)
}

func (suite *HandlerTestSuite) TestUnifiedCalculationRequiresTerms() {
	w := suite.request(http.MethodPost, "/api/unified-calculation", validBody(), false)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Contains(w.Body.String(), "Terms of use")
}

func (suite *HandlerTestSuite) TestUnifiedCalculationValidation() {
	body := validBody()
	body["monthly_payment"] = -100

	w := suite.request(http.MethodPost, "/api/unified-calculation", body, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Success)
	suite.Contains(resp.Error, "monthly_payment")
}

func (suite *HandlerTestSuite) TestUnifiedCalculationMissingField() {
	body := validBody()
	delete(body, "lease_commencement_date")

	w := suite.request(http.MethodPost, "/api/unified-calculation", body, true)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestClassifyFinanceLease() {
	body := validBody()
	body["has_transfer_title"] = true

	w := suite.request(http.MethodPost, "/api/classify", body, true)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.ClassificationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Finance", string(resp.LeaseType))
	suite.True(resp.Tests.TransferOwnership.Met)
}

func (suite *HandlerTestSuite) TestInitialRecognition() {
	body := validBody()
	body["prepaid_rent"] = 5000
	body["lease_incentives"] = 3000

	w := suite.request(http.MethodPost, "/api/initial-recognition", body, true)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.RecognitionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.InDelta(51725.56+2000, resp.ROUAsset.InexactFloat64(), 0.01)
}

func (suite *HandlerTestSuite) TestAmortizationWithExplicitLeaseType() {
	body := validBody()
	body["lease_type"] = "Finance"

	w := suite.request(http.MethodPost, "/api/amortization", body, true)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.ScheduleResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Schedule, 60)
	suite.InDelta(51725.56, resp.Summary.InitialLiability.InexactFloat64(), 0.01)
}

func (suite *HandlerTestSuite) TestTreasuryRatesArePublic() {
	w := suite.request(http.MethodGet, "/api/treasury-rates", nil, false)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.TreasuryRatesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.NotEmpty(resp.Rates)
}

func (suite *HandlerTestSuite) TestUseTreasuryRateSwapsDiscountRate() {
	body := validBody()
	body["use_treasury_rate"] = true

	w := suite.request(http.MethodPost, "/api/unified-calculation", body, true)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.CalculationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	// 60 months snaps to the 5-year Treasury point (4.35%), not the posted 6%.
	suite.InDelta(0.0435, resp.Summary.EffectiveRate.InexactFloat64(), 0.0001)
}

func (suite *HandlerTestSuite) TestTermsAcceptanceFlow() {
	w := suite.request(http.MethodGet, "/api/check-acceptance", nil, false)
	suite.Require().Equal(http.StatusOK, w.Code)
	var status dto.TermsStatusResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &status))
	suite.False(status.Accepted)

	w = suite.request(http.MethodPost, "/api/accept-terms", nil, false)
	suite.Require().Equal(http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	suite.Require().NotEmpty(cookies)

	// Replay the issued cookie against check-acceptance.
	req := httptest.NewRequest(http.MethodGet, "/api/check-acceptance", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &status))
	suite.True(status.Accepted)
}

func (suite *HandlerTestSuite) TestDownloadComplete() {
	body := map[string]any{"inputs": validBody()}

	w := suite.request(http.MethodPost, "/api/download-complete", body, true)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Contains(w.Header().Get("Content-Type"), "spreadsheetml")
	suite.Contains(w.Header().Get("Content-Disposition"), "ASC842_Complete_Analysis_")
	suite.NotEmpty(w.Body.Bytes())
	// xlsx files are zip archives.
	suite.Equal([]byte{'P', 'K'}, w.Body.Bytes()[:2])
}

func (suite *HandlerTestSuite) TestDownloadCompleteRequiresTerms() {
	body := map[string]any{"inputs": validBody()}

	w := suite.request(http.MethodPost, "/api/download-complete", body, false)
	suite.Equal(http.StatusForbidden, w.Code)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
