package quotation

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"quotation-golang/internal/service/pricing"
	"quotation-golang/internal/storage"
)

type State string

const (
	StateCollecting State = "collecting"
	StateValidating State = "validating"
	StatePricing    State = "pricing"
	StateDelivering State = "delivering"
	StateDone       State = "done"
	StateFailed     State = "failed"
)

// Stage names the step a failed quotation stopped at.
type Stage string

const (
	StageValidate Stage = "validate"
	StagePrice    Stage = "price"
	StageRender   Stage = "render"
	StageSend     Stage = "send"
)

type CatalogStorage interface {
	GetProduct(ctx context.Context, id int64) (*storage.Product, error)
	GetMaterial(ctx context.Context, id int64) (*storage.Material, error)
	GetCoating(ctx context.Context, id int64) (*storage.Coating, error)
	GetCostParameters(ctx context.Context) (*storage.CostParameters, error)
	ListOperationsForProduct(ctx context.Context, productID int64) ([]storage.ProductOperation, error)
}

// Renderer produces the quotation document and returns a reference to the
// artifact (a file path). Single attempt, no retry.
type Renderer interface {
	Render(ctx context.Context, data DocumentData) (string, error)
}

// Sender dispatches the notification referencing the rendered artifact.
// Single attempt, no retry.
type Sender interface {
	Send(ctx context.Context, recipient, subject, body, attachmentPath string) error
}

// Request is the caller-supplied configuration to be priced and delivered.
type Request struct {
	CompanyName   string `json:"company_name"`
	CustomerEmail string `json:"customer_email"`
	ProductID     int64  `json:"product_id"`
	MaterialID    int64  `json:"material_id"`
	CoatingID     int64  `json:"coating_id"`
	Quantity      int    `json:"quantity"`
}

// DocumentData is what the renderer receives.
type DocumentData struct {
	CompanyName   string
	CustomerEmail string
	ProductName   string
	MaterialName  string
	CoatingName   string
	Quantity      int
	PricePerUnit  float64
	TotalCost     float64
}

// Result is the structured outcome of a quotation flow. Pricing stays set
// when delivery fails, so the caller can tell "priced but not delivered"
// from "not priced" and resend without recomputation.
type Result struct {
	State        State              `json:"state"`
	FailedStage  Stage              `json:"failed_stage,omitempty"`
	Pricing      *pricing.Breakdown `json:"pricing,omitempty"`
	PricePerUnit float64            `json:"price_per_unit,omitempty"`
	ArtifactPath string             `json:"artifact_path,omitempty"`
	Err          error              `json:"-"`
}

func (r *Result) fail(stage Stage, err error) {
	r.State = StateFailed
	r.FailedStage = stage
	r.Err = err
}

type Service struct {
	storage  CatalogStorage
	renderer Renderer
	sender   Sender
}

func New(storage CatalogStorage, renderer Renderer, sender Sender) *Service {
	return &Service{
		storage:  storage,
		renderer: renderer,
		sender:   sender,
	}
}

// Quote runs the full flow: validate, load catalog rows, price, render the
// document, send the notification.
func (s *Service) Quote(ctx context.Context, req Request) (*Result, error) {
	const op = "service.quotation.Quote"

	res, data, err := s.price(ctx, req)
	if err != nil {
		return res, fmt.Errorf("%s: %w", op, err)
	}

	res.State = StateDelivering

	path, err := s.renderer.Render(ctx, *data)
	if err != nil {
		deliveryErr := &DeliveryError{Stage: StageRender, Err: err}
		res.fail(StageRender, deliveryErr)
		return res, fmt.Errorf("%s: %w", op, deliveryErr)
	}
	res.ArtifactPath = path

	subject := fmt.Sprintf("Quotation for %s", data.ProductName)
	body := fmt.Sprintf(
		"Please find attached the quotation for %d x %s (total %.2f).",
		data.Quantity, data.ProductName, data.TotalCost,
	)

	if err := s.sender.Send(ctx, req.CustomerEmail, subject, body, path); err != nil {
		// artifact path stays in the result for a manual resend
		deliveryErr := &DeliveryError{Stage: StageSend, ArtifactPath: path, Err: err}
		res.fail(StageSend, deliveryErr)
		return res, fmt.Errorf("%s: %w", op, deliveryErr)
	}

	res.State = StateDone
	return res, nil
}

// Price runs the flow up to and including pricing, without delivery. Used for
// form previews.
func (s *Service) Price(ctx context.Context, req Request) (*Result, error) {
	const op = "service.quotation.Price"

	res, _, err := s.price(ctx, req)
	if err != nil {
		return res, fmt.Errorf("%s: %w", op, err)
	}

	res.State = StateDone
	return res, nil
}

func (s *Service) price(ctx context.Context, req Request) (*Result, *DocumentData, error) {
	res := &Result{State: StateValidating}

	if err := validate(req); err != nil {
		res.fail(StageValidate, err)
		return res, nil, err
	}

	res.State = StatePricing

	var (
		product    *storage.Product
		material   *storage.Material
		coating    *storage.Coating
		params     *storage.CostParameters
		operations []storage.ProductOperation
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		product, err = s.storage.GetProduct(gCtx, req.ProductID)
		return catalogErr("product", req.ProductID, err)
	})
	g.Go(func() error {
		var err error
		material, err = s.storage.GetMaterial(gCtx, req.MaterialID)
		return catalogErr("material", req.MaterialID, err)
	})
	g.Go(func() error {
		var err error
		coating, err = s.storage.GetCoating(gCtx, req.CoatingID)
		return catalogErr("coating", req.CoatingID, err)
	})
	g.Go(func() error {
		var err error
		params, err = s.storage.GetCostParameters(gCtx)
		return catalogErr("cost parameters", costParametersID, err)
	})
	g.Go(func() error {
		var err error
		operations, err = s.storage.ListOperationsForProduct(gCtx, req.ProductID)
		if err != nil {
			return fmt.Errorf("operations: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		res.fail(StagePrice, err)
		return res, nil, err
	}

	operationCosts := make([]pricing.OperationCost, 0, len(operations))
	for _, operation := range operations {
		operationCosts = append(operationCosts, pricing.OperationCost{
			BaseLaborCost:  operation.BaseLaborCost,
			CostMultiplier: operation.CostMultiplier,
		})
	}

	breakdown, err := pricing.Calculate(pricing.Input{
		MaterialCostPerMM: material.CostPerMM,
		CoatingCostPerMM:  coating.CostPerMM,
		Quantity:          req.Quantity,
		Operations:        operationCosts,
		OverheadRate:      params.OverheadRate,
	})
	if err != nil {
		// unreachable if validation is correct
		res.fail(StagePrice, err)
		return res, nil, err
	}

	res.Pricing = &breakdown
	res.PricePerUnit = pricing.PerUnit(breakdown.Total, req.Quantity)

	data := &DocumentData{
		CompanyName:   req.CompanyName,
		CustomerEmail: req.CustomerEmail,
		ProductName:   product.Name,
		MaterialName:  material.Name,
		CoatingName:   coating.Name,
		Quantity:      req.Quantity,
		PricePerUnit:  res.PricePerUnit,
		TotalCost:     breakdown.Total,
	}

	return res, data, nil
}

// costParametersID mirrors the singleton row id; only used for error detail.
const costParametersID = 1

func validate(req Request) error {
	switch {
	case req.CompanyName == "":
		return &ValidationError{Field: "company_name"}
	case req.CustomerEmail == "":
		return &ValidationError{Field: "customer_email"}
	case req.ProductID <= 0:
		return &ValidationError{Field: "product_id"}
	case req.MaterialID <= 0:
		return &ValidationError{Field: "material_id"}
	case req.CoatingID <= 0:
		return &ValidationError{Field: "coating_id"}
	case req.Quantity <= 0:
		return &ValidationError{Field: "quantity"}
	}
	return nil
}

func catalogErr(entity string, id int64, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, storage.ErrNotFound) {
		return &ConfigurationError{Entity: entity, ID: id}
	}
	return fmt.Errorf("%s: %w", entity, err)
}
