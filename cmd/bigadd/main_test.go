package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddRoundTrip(t *testing.T) {
	sum, overflow, err := add([]string{"2", "3"})
	require.NoError(t, err)
	require.False(t, overflow)
	require.Equal(t, "5", sum.String())
}

func TestAddWrapsOnOverflow(t *testing.T) {
	sum, overflow, err := add([]string{
		"115792089237316195423570985008687907853269984665640564039457584007913129639935",
		"1",
	})
	require.NoError(t, err)
	require.True(t, overflow)
	require.Equal(t, "0", sum.String())
}

func TestAddRequiresTwoArgs(t *testing.T) {
	_, _, err := add([]string{"1"})
	require.Error(t, err)
}

func TestAddRejectsNonDecimal(t *testing.T) {
	_, _, err := add([]string{"1", "xyz"})
	require.Error(t, err)
}
