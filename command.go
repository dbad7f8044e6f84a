package main

import (
	"fmt"
	"strconv"

	"github.com/exactnum/fraction/config"
	"github.com/exactnum/fraction/fraction"
	"github.com/exactnum/fraction/logger"
	"github.com/exactnum/fraction/rpc"
	"github.com/urfave/cli/v2"
)

func evalCmd(c *cli.Context) error {
	if c.NArg() != 3 {
		return fmt.Errorf("usage: fraction eval A OP B, e.g. fraction eval 1/2 + 1/3")
	}
	a, err := fraction.Parse(c.Args().Get(0))
	if err != nil {
		return err
	}
	defer fraction.Release(&a)
	b, err := fraction.Parse(c.Args().Get(2))
	if err != nil {
		return err
	}
	defer fraction.Release(&b)

	var result *fraction.Frac
	switch op := c.Args().Get(1); op {
	case "+":
		result = a.Add(b)
	case "-":
		result = a.Sub(b)
	case "x", "*":
		result = a.Mul(b)
	case "/":
		if b.IsZero() {
			return fmt.Errorf("division by zero")
		}
		result = a.Div(b)
	case "^":
		exp, ok := b.Int64()
		if !ok {
			return fmt.Errorf("the exponent must be an integer")
		}
		if a.IsZero() && exp < 0 {
			return fmt.Errorf("zero to negative power")
		}
		result = a.Pow(exp)
	default:
		return fmt.Errorf("invalid operator %q", op)
	}
	defer fraction.Release(&result)

	places := int32(c.Int64("places"))
	fmt.Printf("%s = %s\n", result, result.Decimal(places))
	return nil
}

func approxCmd(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: fraction approx VALUE")
	}
	value, err := strconv.ParseFloat(c.Args().Get(0), 64)
	if err != nil {
		return err
	}
	f, err := fraction.FromFloat64(value, c.Int64("max-denominator"))
	if err != nil {
		return err
	}
	defer fraction.Release(&f)

	fmt.Printf("%s = %v\n", f, f.Float64())
	return nil
}

func inspectCmd(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: fraction inspect F")
	}
	f, err := fraction.Parse(c.Args().Get(0))
	if err != nil {
		return err
	}
	defer fraction.Release(&f)

	num, den := f.Num(), f.Denom()
	floor, ceil := f.Floor(), f.Ceil()
	round, trunc := f.Round(), f.Trunc()
	defer func() {
		num.Release()
		den.Release()
		fraction.Release(&floor)
		fraction.Release(&ceil)
		fraction.Release(&round)
		fraction.Release(&trunc)
	}()

	fmt.Printf("fraction:\t%s\n", f)
	fmt.Printf("numerator:\t%s\n", num.Text(10))
	fmt.Printf("denominator:\t%s\n", den.Text(10))
	fmt.Printf("float:\t\t%v\n", f.Float64())
	fmt.Printf("sign:\t\t%d\n", f.Sign())
	fmt.Printf("integer:\t%t\n", f.IsInt())
	fmt.Printf("floor:\t\t%s\tceil:\t%s\n", floor, ceil)
	fmt.Printf("round:\t\t%s\ttrunc:\t%s\n", round, trunc)
	fmt.Printf("hash:\t\t%d\n", f.Hash())
	fmt.Printf("fits:\t\tint32 %t\tint64 %t\tdouble %t\n", f.FitsInt32(), f.FitsInt64(), f.FitsFloat64())
	return nil
}

func serveCmd(c *cli.Context) error {
	logger.SetLevel(c.Int("log"))

	custom := &config.Custom{}
	custom.Calc.MaxDenominator = config.DefaultMaxDenominator
	custom.Calc.DecimalPlaces = config.DefaultDecimalPlaces
	custom.RPC.Port = c.Int("port")
	if path := c.String("config"); path != "" {
		loaded, err := config.Initialize(path)
		if err != nil {
			return err
		}
		custom = loaded
		logger.SetLevel(custom.Log.Level)
		logger.SetLimiter(custom.Log.Limiter)
		err = logger.SetFilter(custom.Log.Filter)
		if err != nil {
			return err
		}
	}

	server := rpc.NewServer(custom, custom.RPC.Port)
	logger.Printf("fraction rpc listening on %s\n", server.Addr)
	return server.ListenAndServe()
}

func callCmd(c *cli.Context) error {
	params := make([]interface{}, 0)
	for _, p := range c.StringSlice("param") {
		params = append(params, p)
	}
	data, err := rpc.CallFractionRPC(c.String("node"), c.String("method"), params)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
