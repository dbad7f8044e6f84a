package rpc

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"

	"github.com/exactnum/fraction/config"
	"github.com/exactnum/fraction/fraction"
)

func getInfo(custom *config.Custom) (map[string]interface{}, error) {
	return map[string]interface{}{
		"version":         config.BuildVersion,
		"engine":          "math/big",
		"go":              runtime.Version(),
		"max-denominator": custom.Calc.MaxDenominator,
		"decimal-places":  custom.Calc.DecimalPlaces,
	}, nil
}

func evaluateFraction(custom *config.Custom, params []interface{}) (map[string]interface{}, error) {
	if len(params) != 3 {
		return nil, errors.New("invalid params count")
	}
	a, err := fraction.Parse(fmt.Sprint(params[0]))
	if err != nil {
		return nil, err
	}
	op := fmt.Sprint(params[1])
	b, err := fraction.Parse(fmt.Sprint(params[2]))
	if err != nil {
		fraction.Release(&a)
		return nil, err
	}

	var result *fraction.Frac
	switch op {
	case "+":
		result = a.Add(b)
	case "-":
		result = a.Sub(b)
	case "*":
		result = a.Mul(b)
	case "/":
		if b.IsZero() {
			fraction.Release(&a)
			fraction.Release(&b)
			return nil, errors.New("division by zero")
		}
		result = a.Div(b)
	default:
		fraction.Release(&a)
		fraction.Release(&b)
		return nil, fmt.Errorf("invalid operator %q", op)
	}
	fraction.Release(&a)
	fraction.Release(&b)

	data := fractionToMap(result, custom.Calc.DecimalPlaces)
	fraction.Release(&result)
	return data, nil
}

func approximateFloat(custom *config.Custom, params []interface{}) (map[string]interface{}, error) {
	if len(params) != 1 && len(params) != 2 {
		return nil, errors.New("invalid params count")
	}
	value, err := strconv.ParseFloat(fmt.Sprint(params[0]), 64)
	if err != nil {
		return nil, err
	}
	maxDen := custom.Calc.MaxDenominator
	if len(params) == 2 {
		maxDen, err = strconv.ParseInt(fmt.Sprint(params[1]), 10, 64)
		if err != nil {
			return nil, err
		}
	}

	f, err := fraction.FromFloat64(value, maxDen)
	if err != nil {
		return nil, err
	}
	data := fractionToMap(f, custom.Calc.DecimalPlaces)
	fraction.Release(&f)
	return data, nil
}

func inspectFraction(params []interface{}) (map[string]interface{}, error) {
	if len(params) != 1 {
		return nil, errors.New("invalid params count")
	}
	f, err := fraction.Parse(fmt.Sprint(params[0]))
	if err != nil {
		return nil, err
	}

	num, den := f.Num(), f.Denom()
	floor, ceil := f.Floor(), f.Ceil()
	round, trunc := f.Round(), f.Trunc()
	data := map[string]interface{}{
		"fraction":    f.String(),
		"numerator":   num.Text(10),
		"denominator": den.Text(10),
		"float":       f.Float64(),
		"hash":        strconv.FormatUint(f.Hash(), 10),
		"sign":        f.Sign(),
		"integer":     f.IsInt(),
		"floor":       floor.String(),
		"ceil":        ceil.String(),
		"round":       round.String(),
		"trunc":       trunc.String(),
		"fits-int32":  f.FitsInt32(),
		"fits-int64":  f.FitsInt64(),
		"fits-double": f.FitsFloat64(),
	}
	num.Release()
	den.Release()
	fraction.Release(&floor)
	fraction.Release(&ceil)
	fraction.Release(&round)
	fraction.Release(&trunc)
	fraction.Release(&f)
	return data, nil
}

func fractionToMap(f *fraction.Frac, places int32) map[string]interface{} {
	num, den := f.Num(), f.Denom()
	data := map[string]interface{}{
		"fraction":    f.String(),
		"numerator":   num.Text(10),
		"denominator": den.Text(10),
		"float":       f.Float64(),
		"decimal":     f.Decimal(places).String(),
	}
	num.Release()
	den.Release()
	return data
}
