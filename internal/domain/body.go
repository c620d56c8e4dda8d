package domain

// Body identifies a celestial body tracked by the chart computation.
type Body string

const (
	Sun      Body = "Sun"
	Moon     Body = "Moon"
	Mercury  Body = "Mercury"
	Venus    Body = "Venus"
	Mars     Body = "Mars"
	Jupiter  Body = "Jupiter"
	Saturn   Body = "Saturn"
	Uranus   Body = "Uranus"
	Neptune  Body = "Neptune"
	Pluto    Body = "Pluto"
	TrueNode Body = "True Node"
)

// ClassicalBodies is the default tracked set: the Sun, the Moon, and the
// eight planets. The lunar true node is added only by configuration.
func ClassicalBodies() []Body {
	return []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}
}
