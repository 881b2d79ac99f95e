package label

// DefaultSender is the sender block printed when none is configured.
const DefaultSender = "KAFFESA GIDA SANAYİ VE DIŞ TİCARET ANONİM ŞİRKETİ\n" +
	"Adres: BALMUMCU MAH. BARBAROS BULVARI İBA BLOKLARI, 34/A\n" +
	"İl/İlçe: Beşiktaş/İstanbul\n" +
	"Tel: 0212 265 16 16\n"

// Badge scale bounds.
const (
	MinBadgeScale     = 1.0
	MaxBadgeScale     = 2.0
	DefaultBadgeScale = 1.7
)

// Sheet holds the settings shared by every label in a print run.
type Sheet struct {
	// Size is the page format. The zero value renders as A5.
	Size Size

	// BadgeScale grows the payer badge. It is clamped to
	// [MinBadgeScale, MaxBadgeScale]; zero means DefaultBadgeScale.
	BadgeScale float64

	// Sender is printed under the "Gönderici" heading, line breaks kept.
	Sender string

	// Logo is an optional PNG drawn at the top of each label.
	Logo []byte
}

// DefaultSheet returns A4 labels with the default sender and badge scale.
func DefaultSheet() Sheet {
	return Sheet{
		Size:       A4,
		BadgeScale: DefaultBadgeScale,
		Sender:     DefaultSender,
	}
}

// Scale returns the effective badge scale.
func (s Sheet) Scale() float64 {
	switch {
	case s.BadgeScale == 0:
		return DefaultBadgeScale
	case s.BadgeScale < MinBadgeScale:
		return MinBadgeScale
	case s.BadgeScale > MaxBadgeScale:
		return MaxBadgeScale
	}
	return s.BadgeScale
}
