package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Type distinguishes the direction of goods movement: Inbound orders add to
// warehouse inventory flow, Outbound orders leave it. Analytics bucket
// monthly quantities by this direction.
type Type int

const (
	// TypeUnknown represents an invalid or undefined order type.
	TypeUnknown Type = iota

	// TypeInbound marks goods arriving at the warehouse.
	TypeInbound

	// TypeOutbound marks goods leaving the warehouse.
	TypeOutbound
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:  "Unknown",
		TypeInbound:  "Inbound",
		TypeOutbound: "Outbound",
	}
}

// TypeFromString parses the wire representation ("Inbound" or "Outbound").
func TypeFromString(s string) (Type, error) {
	switch s {
	case "Inbound":
		return TypeInbound, nil
	case "Outbound":
		return TypeOutbound, nil
	default:
		return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
			"orderType", fmt.Errorf("%q is not a recognized order type", s))
	}
}

// Validate checks if the Type value is Inbound or Outbound.
func (t Type) Validate() error {
	if t != TypeInbound && t != TypeOutbound {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderType", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns the human-readable name of the order type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
