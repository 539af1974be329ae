package forecast

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

// DataFormatCode is the text code attached to wrapped data errors.
const DataFormatCode = "FORECAST_DATA_FORMAT"

// ErrDataFormat reports absent or malformed external forecast data. It is
// raised at parse or widget-construction time and is terminal for the render
// pass. Callers match with errors.Is.
var ErrDataFormat = errors.New("forecast: malformed data")

// DataFormat wraps ErrDataFormat with context about the offending input.
func DataFormat(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDataFormat, fmt.Sprintf(format, args...))
}

// WrapExternal decorates a data error for outer surfaces (CLI, checks) with a
// go-errors category and text code.
func WrapExternal(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	if errors.Is(err, ErrDataFormat) {
		return goerrors.Wrap(err, goerrors.CategoryValidation, "forecast data is malformed").
			WithTextCode(DataFormatCode)
	}
	return err
}
