//go:build js && wasm

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/smallyu/go-affine-secp256k1/pkg/affine"
)

var curve = affine.NewCurve()

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go affine-secp256k1 WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoAffine", map[string]interface{}{
		"Generator":      js.FuncOf(Generator),
		"Contains":       js.FuncOf(Contains),
		"Add":            js.FuncOf(Add),
		"ScalarMult":     js.FuncOf(ScalarMult),
		"ScalarBaseMult": js.FuncOf(ScalarBaseMult),
	})

	<-c
}

// pointResponse is the JSON shape returned for every point result.
// All byte strings are hex encoded.
type pointResponse struct {
	Identity     bool   `json:"identity"`
	X            string `json:"x,omitempty"`
	Y            string `json:"y,omitempty"`
	Compressed   string `json:"compressed"`
	Uncompressed string `json:"uncompressed"`
}

// Generator returns the base point.
// Returns:
// JSON point
func Generator(this js.Value, args []js.Value) interface{} {
	return marshalPoint(curve.Generator())
}

// Contains reports whether an encoded point decodes to a curve point.
// Arguments:
// 0: hex SEC 1 point
// Returns:
// bool
func Contains(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (point)"
	}
	_, err := parsePoint(args[0].String())
	return err == nil
}

// Add returns the sum of two points.
// Arguments:
// 0: JSON string {"p": hex, "q": hex}
// Returns:
// JSON point or error string
func Add(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (jsonParams)"
	}

	type AddInput struct {
		P string `json:"p"`
		Q string `json:"q"`
	}

	var input AddInput
	if err := json.Unmarshal([]byte(args[0].String()), &input); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}

	p, err := parsePoint(input.P)
	if err != nil {
		return fmt.Sprintf("error: invalid p: %v", err)
	}
	q, err := parsePoint(input.Q)
	if err != nil {
		return fmt.Sprintf("error: invalid q: %v", err)
	}

	return marshalPoint(curve.Add(p, q))
}

// ScalarMult multiplies a point by a scalar.
// Arguments:
// 0: JSON string {"point": hex, "scalar": hex}
// Returns:
// JSON point or error string
func ScalarMult(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (jsonParams)"
	}

	type MulInput struct {
		Point  string `json:"point"`
		Scalar string `json:"scalar"`
	}

	var input MulInput
	if err := json.Unmarshal([]byte(args[0].String()), &input); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}

	p, err := parsePoint(input.Point)
	if err != nil {
		return fmt.Sprintf("error: invalid point: %v", err)
	}
	k, err := parseScalar(input.Scalar)
	if err != nil {
		return fmt.Sprintf("error: invalid scalar: %v", err)
	}

	return marshalPoint(curve.VarBase(p, k))
}

// ScalarBaseMult multiplies the generator by a scalar.
// Arguments:
// 0: hex scalar
// Returns:
// JSON point or error string
func ScalarBaseMult(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (scalar)"
	}

	k, err := parseScalar(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: invalid scalar: %v", err)
	}

	return marshalPoint(curve.FixedBase(k))
}

// Helpers

func parsePoint(s string) (affine.Point, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return affine.Point{}, err
	}
	return curve.ParsePoint(b)
}

func parseScalar(s string) (affine.Scalar, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return affine.Scalar{}, err
	}
	k, ok := affine.NewScalar(b)
	if !ok {
		return affine.Scalar{}, fmt.Errorf("scalar is not less than the group order")
	}
	return k, nil
}

func marshalPoint(p affine.Point) string {
	resp := pointResponse{
		Identity:     p.IsIdentity(),
		Compressed:   hex.EncodeToString(p.SerializeCompressed()),
		Uncompressed: hex.EncodeToString(p.SerializeUncompressed()),
	}
	if !p.IsIdentity() {
		x, y := p.X().Bytes(), p.Y().Bytes()
		resp.X = hex.EncodeToString(x[:])
		resp.Y = hex.EncodeToString(y[:])
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf("error: marshal result failed: %v", err)
	}
	return string(b)
}
