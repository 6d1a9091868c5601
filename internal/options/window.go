package options

import (
	"fmt"
	"strconv"
	"strings"

	"deskshell/internal/logging"
)

// Default main window geometry. The default size is only offered when the
// available area is larger than the minimum in both dimensions.
const (
	defaultWindowWidth  = 1200
	defaultWindowHeight = 900
	minAvailableWidth   = 800
	minAvailableHeight  = 500
)

// Size is a width and height in device-independent pixels.
type Size struct {
	Width  int
	Height int
}

// Rect is a window rectangle.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

func (r Rect) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", r.X, r.Y, r.Width, r.Height)
}

// ParseRect reads "x,y,width,height". Width and height must be positive.
func ParseRect(text string) (Rect, error) {
	return rectFromFields(strings.Split(text, ","))
}

func rectFromFields(fields []string) (Rect, error) {
	if len(fields) != 4 {
		return Rect{}, fmt.Errorf("window bounds need 4 values, got %d", len(fields))
	}
	var nums [4]int
	for i, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return Rect{}, fmt.Errorf("window bounds value %q: %w", field, err)
		}
		nums[i] = n
	}
	r := Rect{X: nums[0], Y: nums[1], Width: nums[2], Height: nums[3]}
	if r.Width <= 0 || r.Height <= 0 {
		return Rect{}, fmt.Errorf("window bounds %s: width and height must be positive", r)
	}
	return r, nil
}

func (r Rect) fields() []string {
	return []string{strconv.Itoa(r.X), strconv.Itoa(r.Y), strconv.Itoa(r.Width), strconv.Itoa(r.Height)}
}

// MainWindowBounds returns the saved main window rectangle. It reports false
// when nothing usable is stored.
func (o *Options) MainWindowBounds() (Rect, bool) {
	fields := o.settings.Strings(KeyMainWindowBounds, nil)
	if len(fields) == 0 {
		return Rect{}, false
	}
	r, err := rectFromFields(fields)
	if err != nil {
		o.logger.Debug("ignoring stored window bounds", logging.Error(err))
		return Rect{}, false
	}
	return r, true
}

// SetMainWindowBounds saves the main window rectangle.
func (o *Options) SetMainWindowBounds(r Rect) error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: window bounds %s", ErrInvalidValue, r)
	}
	return o.settings.SetStrings(KeyMainWindowBounds, r.fields())
}

// DefaultWindowSize returns the initial main window size for a screen whose
// usable area is available: 1200x900, clipped to the area. It reports false
// for screens too small to warrant a default.
func DefaultWindowSize(available Size) (Size, bool) {
	if available.Width <= minAvailableWidth || available.Height <= minAvailableHeight {
		return Size{}, false
	}
	return Size{
		Width:  min(defaultWindowWidth, available.Width),
		Height: min(defaultWindowHeight, available.Height),
	}, true
}
