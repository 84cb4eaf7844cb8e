package main

import (
	"errors"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
)

func TestParser(t *testing.T) {
	p := newParser()
	require.Zero(t, p.Options&flags.PrintErrors)

	var fe *flags.Error

	_, err := p.ParseArgs([]string{"--unknown"})
	require.True(t, errors.As(err, &fe))
	require.Equal(t, flags.ErrUnknownFlag, fe.Type)

	_, err = newParser().ParseArgs([]string{"--help"})
	require.True(t, errors.As(err, &fe))
	require.Equal(t, flags.ErrHelp, fe.Type)
	require.Contains(t, fe.Message, "storage")
}
