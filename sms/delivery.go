package sms

import (
	"context"

	"github.com/saytoai/shared/domain"
)

// ChannelProbe reports whether a phone number is reachable on the
// zero-marginal-cost in-app channel (e.g. the user has the bot open).
// Implemented by the caller; typically a user-store lookup.
type ChannelProbe interface {
	ReachableInApp(ctx context.Context, phone string) (bool, error)
}

// ChannelProbeFunc adapts a function to the ChannelProbe interface.
type ChannelProbeFunc func(ctx context.Context, phone string) (bool, error)

func (f ChannelProbeFunc) ReachableInApp(ctx context.Context, phone string) (bool, error) {
	return f(ctx, phone)
}

// CostInfo describes the expected cost of one delivery on a channel.
type CostInfo struct {
	Method     domain.DeliveryMethod
	CostPerMsg int64  // minor units; 0 for in-app
	Currency   string // "FREE" for in-app
}

// costPerExternalSMS is the gateway price per message, in tiyin.
const costPerExternalSMS = 11_500

// ChooseDelivery picks the cheapest channel that can reach the phone:
// in-app when the probe confirms reachability, external SMS otherwise.
// Probe errors count as unreachable so delivery never dead-ends.
func ChooseDelivery(ctx context.Context, probe ChannelProbe, phone string) domain.DeliveryMethod {
	if probe == nil {
		return domain.DeliveryExternalSMS
	}
	reachable, err := probe.ReachableInApp(ctx, phone)
	if err != nil || !reachable {
		return domain.DeliveryExternalSMS
	}
	return domain.DeliveryInApp
}

// Cost returns the cost profile of a delivery method.
func Cost(method domain.DeliveryMethod) CostInfo {
	if method == domain.DeliveryInApp {
		return CostInfo{Method: method, CostPerMsg: 0, Currency: "FREE"}
	}
	return CostInfo{Method: domain.DeliveryExternalSMS, CostPerMsg: costPerExternalSMS, Currency: "UZS"}
}

// EstimateCost totals the cost of sending count messages over a method.
func EstimateCost(method domain.DeliveryMethod, count int64) domain.Money {
	info := Cost(method)
	currency := info.Currency
	if currency == "FREE" {
		currency = "UZS"
	}
	return domain.Money{Amount: info.CostPerMsg * count, Currency: currency}
}
