package shop

import (
	"errors"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/pkg/guard"
)

var ErrDeliveryPolicyIsNotConstructed = errors.New("DeliveryPolicy must be created via NewDeliveryPolicy")

// DeliveryPolicy is what a shop charges for delivery and the smallest order it will take.
// A zero fee means delivery is always free; freeDeliveryAbove, when set, waives the fee
// for subtotals at or above it.
type DeliveryPolicy struct {
	fee               kernel.Money
	minimumOrder      kernel.Money
	freeDeliveryAbove *kernel.Money
	guard             guard.ConstructorGuard
}

func NewDeliveryPolicy(fee, minimumOrder kernel.Money, freeDeliveryAbove *kernel.Money) (DeliveryPolicy, error) {
	checks := []error{fee.Validate(), minimumOrder.Validate()}
	if freeDeliveryAbove != nil {
		checks = append(checks, freeDeliveryAbove.Validate())
	}
	if err := errors.Join(checks...); err != nil {
		return DeliveryPolicy{}, err
	}

	p := DeliveryPolicy{fee: fee, minimumOrder: minimumOrder, guard: guard.NewConstructorGuard()}
	if freeDeliveryAbove != nil {
		threshold := *freeDeliveryAbove
		p.freeDeliveryAbove = &threshold
	}
	return p, nil
}

// FreeDeliveryPolicy charges nothing and has no minimum.
func FreeDeliveryPolicy() DeliveryPolicy {
	return DeliveryPolicy{fee: kernel.ZeroMoney(), minimumOrder: kernel.ZeroMoney(), guard: guard.NewConstructorGuard()}
}

func (p DeliveryPolicy) Validate() error {
	return p.guard.Validate(ErrDeliveryPolicyIsNotConstructed)
}

func (p DeliveryPolicy) Fee() kernel.Money {
	return p.fee
}

func (p DeliveryPolicy) MinimumOrder() kernel.Money {
	return p.minimumOrder
}

func (p DeliveryPolicy) FreeDeliveryAbove() (kernel.Money, bool) {
	if p.freeDeliveryAbove == nil {
		return kernel.Money{}, false
	}
	return *p.freeDeliveryAbove, true
}
