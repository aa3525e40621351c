package clipper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakePath64(t *testing.T) {
	path, err := MakePath64(0, 0, 10, 0, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, Path64{{0, 0}, {10, 0}, {10, 10}}, path)

	_, err = MakePath64(0, 0, 10)
	assert.ErrorIs(t, err, ErrNonPair)
}

func TestMakePathD(t *testing.T) {
	path, err := MakePathD(0.5, 1.5, 2.5, 3.5)
	require.NoError(t, err)
	assert.Equal(t, PathD{{0.5, 1.5}, {2.5, 3.5}}, path)

	_, err = MakePathD(1.0)
	assert.ErrorIs(t, err, ErrNonPair)
}

func TestStripDuplicates(t *testing.T) {
	path := Path64{{0, 0}, {0, 0}, {10, 0}, {10, 0}, {10, 10}, {0, 0}}

	open := StripDuplicates(path, false)
	assert.Equal(t, Path64{{0, 0}, {10, 0}, {10, 10}, {0, 0}}, open)

	closed := StripDuplicates(path, true)
	assert.Equal(t, Path64{{0, 0}, {10, 0}, {10, 10}}, closed)
}

func TestReverse64(t *testing.T) {
	path := Path64{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	assert.Equal(t, Path64{{0, 10}, {10, 10}, {10, 0}, {0, 0}}, Reverse64(path))
	assert.Empty(t, Reverse64(nil))
}

func TestScalePath64(t *testing.T) {
	path := Path64{{10, 20}, {-4, 7}}

	var errorCode int
	scaled := ScalePath64(path, 2.5, &errorCode)
	assert.Zero(t, errorCode)
	assert.Equal(t, Path64{{25, 50}, {-10, 18}}, scaled)

	// zero scale: non-fatal error bit, path untouched
	unscaled := ScalePath64(path, 0, &errorCode)
	assert.NotZero(t, errorCode&ErrScaleBit)
	assert.Equal(t, path, unscaled)
}

func TestTranslatePath64(t *testing.T) {
	path := Path64{{0, 0}, {10, 5}}
	assert.Equal(t, Path64{{3, -2}, {13, 3}}, TranslatePath64(path, 3, -2))

	paths := TranslatePaths64(Paths64{path}, 1, 1)
	assert.Equal(t, Paths64{{{1, 1}, {11, 6}}}, paths)
}

func TestEllipse64(t *testing.T) {
	circle := Ellipse64(Point64{0, 0}, 100, 0, 64)
	require.Len(t, circle, 64)
	// vertices all lie on the radius and the area approaches pi*r^2
	assert.InDelta(t, 31415.9, Area64(circle), 110.0)
	assert.Empty(t, Ellipse64(Point64{0, 0}, -5, 5, 10))

	defaultSteps := Ellipse64(Point64{0, 0}, 100, 100, 0)
	assert.GreaterOrEqual(t, len(defaultSteps), 3)
}

func TestStarPolygon64(t *testing.T) {
	star := StarPolygon64(Point64{0, 0}, 100, 40, 5)
	require.Len(t, star, 10)
	assert.Empty(t, StarPolygon64(Point64{0, 0}, 100, 40, 2))
	assert.Empty(t, StarPolygon64(Point64{0, 0}, 0, 40, 5))
}

func TestCheckPrecisionRange(t *testing.T) {
	precision := 5
	var errorCode int
	CheckPrecisionRange(&precision, &errorCode)
	assert.Equal(t, 5, precision)
	assert.Zero(t, errorCode)

	precision = 12
	CheckPrecisionRange(&precision, &errorCode)
	assert.Equal(t, MaxDecimalPrecision, precision)
	assert.NotZero(t, errorCode&ErrPrecisionBit)

	precision = -12
	errorCode = 0
	CheckPrecisionRange(&precision, &errorCode)
	assert.Equal(t, -MaxDecimalPrecision, precision)
	assert.NotZero(t, errorCode&ErrPrecisionBit)
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, Version)
}
