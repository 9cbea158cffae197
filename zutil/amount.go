// Copyright (c) 2013, 2014 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zutil

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

const (
	// ZatoshiPerZEC is the number of zatoshi in one coin.
	ZatoshiPerZEC = 1e8

	// MaxMoney is the maximum transaction amount allowed in zatoshi.
	MaxMoney = 21e6 * ZatoshiPerZEC
)

// AmountUnit describes a method of converting an Amount to something
// other than the base unit.  The value of the AmountUnit is the exponent
// component of the decadic multiple to convert from an amount in coins to an
// amount counted in units.
type AmountUnit int

// These constants define various units used when describing a monetary
// amount.
const (
	AmountMegaZEC  AmountUnit = 6
	AmountKiloZEC  AmountUnit = 3
	AmountZEC      AmountUnit = 0
	AmountMilliZEC AmountUnit = -3
	AmountMicroZEC AmountUnit = -6
	AmountZatoshi  AmountUnit = -8
)

// String returns the unit as a string.  For recognized units, the SI
// prefix is used, or "Zatoshi" for the base unit.  For all unrecognized
// units, "1eN ZEC" is returned, where N is the AmountUnit.
func (u AmountUnit) String() string {
	switch u {
	case AmountMegaZEC:
		return "MZEC"
	case AmountKiloZEC:
		return "kZEC"
	case AmountZEC:
		return "ZEC"
	case AmountMilliZEC:
		return "mZEC"
	case AmountMicroZEC:
		return "μZEC"
	case AmountZatoshi:
		return "Zatoshi"

	default:
		return "1e" + strconv.FormatInt(int64(u), 10) + " ZEC"
	}
}

// Amount represents the base monetary unit, the zatoshi.  A single Amount is
// equal to 1e-8 of a coin.
type Amount int64

// round converts a floating point number, which may or may not be representable
// as an integer, to the Amount integer type by rounding to the nearest integer.
// This is performed by adding or subtracting 0.5 depending on the sign, and
// relying on integer truncation to round the value to the nearest Amount.
func round(f float64) Amount {
	if f < 0 {
		return Amount(f - 0.5)
	}
	return Amount(f + 0.5)
}

// NewAmount creates an Amount from a floating point value representing
// some value in coins.  NewAmount errors if f is NaN or +-Infinity, but
// does not check that the amount is within MaxMoney.
//
// For creating a new Amount with an int64 value which denotes a quantity of
// zatoshi, do a simple type conversion from type int64 to Amount.
func NewAmount(f float64) (Amount, error) {
	// The amount is only considered invalid if it cannot be represented
	// as an integer type.  This may happen if f is NaN or +-Infinity.
	switch {
	case math.IsNaN(f):
		fallthrough
	case math.IsInf(f, 1):
		fallthrough
	case math.IsInf(f, -1):
		return 0, errors.New("invalid amount")
	}

	return round(f * ZatoshiPerZEC), nil
}

// ToUnit converts a monetary amount counted in base units to a floating
// point value representing an amount of the passed unit.
func (a Amount) ToUnit(u AmountUnit) float64 {
	return float64(a) / math.Pow10(int(u+8))
}

// ToZEC is the equivalent of calling ToUnit with AmountZEC.
func (a Amount) ToZEC() float64 {
	return a.ToUnit(AmountZEC)
}

// Format formats a monetary amount counted in base units as a string for a
// given unit.  The conversion will succeed for any unit, however, known units
// will be formatted with an appended label describing the units with SI
// notation, or "Zatoshi" for the base unit.
func (a Amount) Format(u AmountUnit) string {
	units := " " + u.String()
	return strconv.FormatFloat(a.ToUnit(u), 'f', -int(u+8), 64) + units
}

// String is the equivalent of calling Format with AmountZEC.
func (a Amount) String() string {
	return a.Format(AmountZEC)
}

// IsValid reports whether the amount lies within [-MaxMoney, MaxMoney].
// Value balances of shielded transactions can be negative.
func (a Amount) IsValid() bool {
	return a >= -MaxMoney && a <= MaxMoney
}
