package generate_slots

import (
	"context"
	"fmt"
)

// UseCase bulk-creates recurring slots from a daily template.
type UseCase struct {
	generator SlotGenerator
	logger    Logger
}

// NewUseCase creates the use case.
func NewUseCase(generator SlotGenerator, logger Logger) *UseCase {
	return &UseCase{
		generator: generator,
		logger:    logger,
	}
}

// Execute validates the template and dates before any network call, then
// asks the remote store to create one slot per day. The created slots come
// back with store-assigned ids and full template capacity available.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	payload, err := parseRequest(req)
	if err != nil {
		uc.logger.Warn("GenerateSlots: validation failed: %v", err)
		return nil, err
	}

	created, err := uc.generator.Generate(ctx, payload)
	if err != nil {
		uc.logger.Error("GenerateSlots: generation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("GenerateSlots: created %d slots", len(created))
	return &Response{Created: created}, nil
}
