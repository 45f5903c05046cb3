package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Pos-api/internal/domain/entity"
)

func TestPaymentTransaction_CanCancel(t *testing.T) {
	for status, want := range map[string]bool{
		entity.StatusCompleted:         true,
		entity.StatusCancelled:         false,
		entity.StatusReturned:          false,
		entity.StatusPartiallyReturned: false,
	} {
		p := &entity.PaymentTransaction{TransactionStatus: status}
		assert.Equal(t, want, p.CanCancel(), "estado %s", status)
	}
}

func TestFinishedGoodTransaction_CanReturn(t *testing.T) {
	for status, want := range map[string]bool{
		entity.StatusCompleted:         true,
		entity.StatusCancelled:         false,
		entity.StatusReturned:          false,
		entity.StatusPartiallyReturned: false,
	} {
		l := &entity.FinishedGoodTransaction{TransactionStatus: status}
		assert.Equal(t, want, l.CanReturn(), "estado %s", status)
	}
}

func TestAggregateReturnStatus(t *testing.T) {
	line := func(status string) *entity.FinishedGoodTransaction {
		return &entity.FinishedGoodTransaction{TransactionStatus: status}
	}

	// Todas devueltas (total o parcialmente) -> Returned.
	assert.Equal(t, entity.StatusReturned, entity.AggregateReturnStatus([]*entity.FinishedGoodTransaction{
		line(entity.StatusReturned),
		line(entity.StatusPartiallyReturned),
	}))

	// Alguna línea aún Completed -> Partially Returned.
	assert.Equal(t, entity.StatusPartiallyReturned, entity.AggregateReturnStatus([]*entity.FinishedGoodTransaction{
		line(entity.StatusReturned),
		line(entity.StatusCompleted),
	}))
}

func TestBillOfMaterials_IsEmpty(t *testing.T) {
	var nilBOM *entity.BillOfMaterials
	assert.True(t, nilBOM.IsEmpty())
	assert.True(t, (&entity.BillOfMaterials{}).IsEmpty())
	assert.False(t, (&entity.BillOfMaterials{Items: []entity.BOMItem{{ProductID: "A"}}}).IsEmpty())
}
