package usecase

import (
	"github.com/khizar217naat-alt/commission-ledger-service/internal/domain"
	slicedto "github.com/khizar217naat-alt/commission-ledger-service/internal/usecase/dto/slice"
)

type SliceUsecase interface {
	CreateSlice(input *slicedto.CreateSliceInput) (*domain.CommissionSlice, error)
	DeleteSlice(sliceID string) error
	GetSlices() ([]*domain.CommissionSlice, error)
	// FindSlice returns the slice whose range contains amount, or nil.
	FindSlice(amount float64) (*domain.CommissionSlice, error)
}

type DefaultSliceUsecase struct {
	SliceRepo domain.SliceRepository
}

func NewDefaultSliceUsecase(sliceRepo domain.SliceRepository) *DefaultSliceUsecase {
	return &DefaultSliceUsecase{SliceRepo: sliceRepo}
}

func (uc *DefaultSliceUsecase) CreateSlice(input *slicedto.CreateSliceInput) (*domain.CommissionSlice, error) {
	if input.FromAmount >= input.ToAmount {
		return nil, domain.ErrSliceBounds
	}

	newSlice := &domain.CommissionSlice{
		Name:       input.Name,
		FromAmount: input.FromAmount,
		ToAmount:   input.ToAmount,
		Rate:       input.Rate,
	}

	// Overlap is checked against every existing slice, not just the
	// neighbours, with boundary equality counting as overlap.
	existing, err := uc.SliceRepo.GetSlices()
	if err != nil {
		return nil, err
	}
	for _, other := range existing {
		if newSlice.Overlaps(other) {
			return nil, domain.ErrSliceOverlap
		}
	}

	lastOrdinal := 0
	for _, other := range existing {
		if other.Ordinal > lastOrdinal {
			lastOrdinal = other.Ordinal
		}
	}
	newSlice.Ordinal = lastOrdinal + 1

	if err := uc.SliceRepo.CreateSlice(newSlice); err != nil {
		return nil, err
	}
	return newSlice, nil
}

func (uc *DefaultSliceUsecase) DeleteSlice(sliceID string) error {
	if err := uc.SliceRepo.DeleteSlice(sliceID); err != nil {
		return err
	}
	return uc.resequence()
}

// resequence reassigns ordinals 1..N over the remaining slices in their
// prior relative order, keeping the sequence dense after deletions.
func (uc *DefaultSliceUsecase) resequence() error {
	slices, err := uc.SliceRepo.GetSlices()
	if err != nil {
		return err
	}
	for i, s := range slices {
		if s.Ordinal == i+1 {
			continue
		}
		if err := uc.SliceRepo.UpdateSliceOrdinal(s.ID, i+1); err != nil {
			return err
		}
	}
	return nil
}

func (uc *DefaultSliceUsecase) GetSlices() ([]*domain.CommissionSlice, error) {
	return uc.SliceRepo.GetSlices()
}

func (uc *DefaultSliceUsecase) FindSlice(amount float64) (*domain.CommissionSlice, error) {
	slices, err := uc.SliceRepo.GetSlices()
	if err != nil {
		return nil, err
	}
	for _, s := range slices {
		if s.Contains(amount) {
			return s, nil
		}
	}
	return nil, nil
}
