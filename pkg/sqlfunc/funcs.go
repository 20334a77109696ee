package sqlfunc

import (
	"database/sql/driver"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"modernc.org/sqlite"

	"github.com/getmockd/nominal/pkg/uuid32"
)

// SQL function names.
const (
	FuncUUIDToBase32 = "uuid_to_base32"
	FuncBase32ToUUID = "base32_to_uuid"
	FuncIsBase32     = "is_base32_uuid"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// Register installs the conversion functions for every connection the
// "sqlite" driver opens afterwards. It is safe to call more than once.
func Register() error {
	registerOnce.Do(func() {
		for _, fn := range []struct {
			name string
			impl func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error)
		}{
			{FuncUUIDToBase32, uuidToBase32},
			{FuncBase32ToUUID, base32ToUUID},
			{FuncIsBase32, isBase32},
		} {
			if err := sqlite.RegisterDeterministicScalarFunction(fn.name, 1, fn.impl); err != nil {
				registerErr = fmt.Errorf("register %s: %w", fn.name, err)
				return
			}
		}
	})
	return registerErr
}

func uuidToBase32(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	var (
		u   uuid.UUID
		err error
	)
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case []byte:
		if len(v) == 16 {
			u, err = uuid.FromBytes(v)
		} else {
			u, err = uuid32.ParseHex(string(v))
		}
	case string:
		u, err = uuid32.ParseHex(v)
	default:
		return nil, fmt.Errorf("%s: unsupported argument type %T", FuncUUIDToBase32, v)
	}
	if err != nil {
		return nil, err
	}
	return uuid32.Encode(u), nil
}

func base32ToUUID(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	s, ok, err := textArg(FuncBase32ToUUID, args[0])
	if !ok || err != nil {
		return nil, err
	}
	u, err := uuid32.Decode(s)
	if err != nil {
		return nil, err
	}
	return uuid32.FormatHex(u), nil
}

func isBase32(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if args[0] == nil {
		return nil, nil
	}
	s, _, err := textArg(FuncIsBase32, args[0])
	if err != nil || !uuid32.IsBase32(s) {
		return int64(0), nil
	}
	return int64(1), nil
}

func textArg(fn string, v driver.Value) (string, bool, error) {
	switch v := v.(type) {
	case nil:
		return "", false, nil
	case string:
		return v, true, nil
	case []byte:
		return string(v), true, nil
	default:
		return "", false, fmt.Errorf("%s: unsupported argument type %T", fn, v)
	}
}
