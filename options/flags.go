package options

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"namelist-generator/internal/engine"
	"namelist-generator/utils"
)

// BooleanFlag renders a logical parameter. Anything but a true value or a
// true literal gives .false.
func BooleanFlag(args *engine.Args) ([]string, error) {
	related, _ := args.Related()

	flag := false

	switch v := related.(type) {
	case bool:
		flag = v
	case string:
		switch strings.TrimSpace(v) {
		case "true", "True", "TRUE", "1":
			flag = true
		}
	}

	return []string{fmt.Sprintf(" %s = %s", args.Name, utils.FortranBool(flag))}, nil
}

// TdWhat writes the kind of TDDFPT calculation as a bare line.
func TdWhat(args *engine.Args) ([]string, error) {
	related, ok := args.Related()
	if !ok {
		args.Logger().Error("Missing required arguments when building parameter", zap.String("parameter", args.Name))
		return nil, nil
	}

	return []string{utils.Str(utils.Text(related))}, nil
}

// XSpectraComponent renders a vector component parameter: xkvec2 becomes
// xkvec(2).
func XSpectraComponent(args *engine.Args) ([]string, error) {
	if len(args.Name) < 2 {
		args.Logger().Error("invalid vector component name", zap.String("parameter", args.Name))
		return nil, nil
	}

	related, _ := args.Related()

	value, ok := utils.Float(utils.Text(related))
	if !ok {
		args.Logger().Error("not a number", zap.String("parameter", args.Name), zap.Any("value", related))
		return nil, nil
	}

	n := len(args.Name) - 1

	return []string{fmt.Sprintf(" %s(%s)=%s", args.Name[:n], args.Name[n:], utils.FormatFloat(value))}, nil
}
