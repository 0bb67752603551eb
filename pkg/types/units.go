package types

import "fmt"

// Percent is a percentage value (w/w offer, penetration score, area yield ...).
type Percent float64

func (p Percent) String() string { return fmt.Sprintf("%.1f%%", float64(p)) }

// Celsius is a temperature in degrees Celsius.
type Celsius float64

func (c Celsius) String() string { return fmt.Sprintf("%.1f °C", float64(c)) }

// Millimetres is a substrate thickness.
type Millimetres float64

func (m Millimetres) String() string { return fmt.Sprintf("%.2f mm", float64(m)) }

// MetresPerSecond is a drum peripheral velocity.
type MetresPerSecond float64

func (v MetresPerSecond) String() string { return fmt.Sprintf("%.2f m/s", float64(v)) }

// Kilojoules is a cumulative mechanical energy total.
type Kilojoules float64

func (k Kilojoules) String() string { return fmt.Sprintf("%.2f kJ", float64(k)) }

// Millivolts is an electrostatic (zeta) potential.
type Millivolts float64

func (m Millivolts) String() string { return fmt.Sprintf("%.1f mV", float64(m)) }
