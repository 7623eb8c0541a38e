package create

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quotation-golang/internal/service/pricing"
	"quotation-golang/internal/service/quotation"
)

type MockQuoter struct {
	mock.Mock
}

func (m *MockQuoter) Quote(ctx context.Context, req quotation.Request) (*quotation.Result, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quotation.Result), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const reqBody = `{
	"company_name": "Acme Fabrication",
	"customer_email": "buyer@example.com",
	"product_id": 1,
	"material_id": 2,
	"coating_id": 3,
	"quantity": 3
}`

func TestCreateQuotation_Done(t *testing.T) {
	quoter := new(MockQuoter)
	quoter.On("Quote", mock.Anything, mock.Anything).Return(&quotation.Result{
		State:        quotation.StateDone,
		Pricing:      &pricing.Breakdown{MaterialCost: 60, CoatingCost: 15, LaborCost: 45, OverheadCost: 9, Total: 129},
		PricePerUnit: 43,
		ArtifactPath: "/artifacts/quotation-1.xlsx",
	}, nil)

	handler := CreateQuotation(discardLogger(), quoter)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quotation", strings.NewReader(reqBody))

	handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp Resp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, quotation.StateDone, resp.State)
	require.NotNil(t, resp.Pricing)
	assert.InDelta(t, 129.0, resp.Pricing.Total, 1e-9)
	assert.Equal(t, "/artifacts/quotation-1.xlsx", resp.ArtifactPath)
}

func TestCreateQuotation_InvalidJSON(t *testing.T) {
	handler := CreateQuotation(discardLogger(), new(MockQuoter))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quotation", strings.NewReader("{not json"))

	handler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateQuotation_ValidationError(t *testing.T) {
	quoter := new(MockQuoter)
	failed := &quotation.Result{State: quotation.StateFailed, FailedStage: quotation.StageValidate}
	quoter.On("Quote", mock.Anything, mock.Anything).Return(failed, &quotation.ValidationError{Field: "quantity"})

	handler := CreateQuotation(discardLogger(), quoter)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quotation", strings.NewReader(reqBody))

	handler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp Resp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, quotation.StateFailed, resp.State)
	assert.Equal(t, quotation.StageValidate, resp.FailedStage)
}

func TestCreateQuotation_ConfigurationError(t *testing.T) {
	quoter := new(MockQuoter)
	failed := &quotation.Result{State: quotation.StateFailed, FailedStage: quotation.StagePrice}
	quoter.On("Quote", mock.Anything, mock.Anything).Return(failed, &quotation.ConfigurationError{Entity: "material", ID: 99})

	handler := CreateQuotation(discardLogger(), quoter)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quotation", strings.NewReader(reqBody))

	handler(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateQuotation_SenderFailureKeepsPricing(t *testing.T) {
	quoter := new(MockQuoter)
	failed := &quotation.Result{
		State:        quotation.StateFailed,
		FailedStage:  quotation.StageSend,
		Pricing:      &pricing.Breakdown{Total: 129},
		PricePerUnit: 43,
		ArtifactPath: "/artifacts/quotation-2.xlsx",
	}
	quoter.On("Quote", mock.Anything, mock.Anything).
		Return(failed, &quotation.DeliveryError{Stage: quotation.StageSend, ArtifactPath: failed.ArtifactPath})

	handler := CreateQuotation(discardLogger(), quoter)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quotation", strings.NewReader(reqBody))

	handler(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	// the client still receives the computed price and the artifact reference
	var resp Resp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Pricing)
	assert.InDelta(t, 129.0, resp.Pricing.Total, 1e-9)
	assert.Equal(t, "/artifacts/quotation-2.xlsx", resp.ArtifactPath)
}
