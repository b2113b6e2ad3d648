package cli

import (
	"bytes"
	"testing"

	"budget/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "budget", cmd.Use)

	for _, name := range []string{"serve", "allocate"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)
}

func TestRootCommand_Version(t *testing.T) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"-v"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), Version)
}

func TestServeCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	serve, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)

	portFlag := serve.Flags().Lookup("port")
	require.NotNil(t, portFlag)
	assert.Equal(t, "p", portFlag.Shorthand)
}

func TestNormalizePort(t *testing.T) {
	assert.Equal(t, ":8080", normalizePort("8080"))
	assert.Equal(t, ":9090", normalizePort(":9090"))
}

func TestParseCustom(t *testing.T) {
	got, err := parseCustom([]string{"3=25", " 4 = 12.5 "})
	require.NoError(t, err)
	assert.Equal(t, map[uint]float64{3: 25, 4: 12.5}, got)

	got, err = parseCustom(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	for _, bad := range []string{"3", "x=1", "0=5", "3=abc", "-1=5"} {
		_, err := parseCustom([]string{bad})
		assert.Error(t, err, bad)
	}

	// ParseFloat 接受 NaN 和 Inf，需要单独拒绝
	for _, bad := range []string{"3=NaN", "3=Inf", "3=-inf", "3=1e7", "3=1.7e308"} {
		_, err := parseCustom([]string{bad})
		assert.ErrorIs(t, err, service.ErrValidation, bad)
	}
}

func TestAllocateCommand_NaNFailsBeforeBootstrap(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"allocate", "--strategy", "custom", "--custom", "3=NaN"})

	err := cmd.Execute()
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestAllocateOptions_Request(t *testing.T) {
	req, err := (&allocateOptions{strategy: "recommended"}).request()
	require.NoError(t, err)
	assert.Equal(t, service.StrategyRecommended, req.Strategy)

	req, err = (&allocateOptions{strategy: "custom", custom: []string{"2=40"}}).request()
	require.NoError(t, err)
	assert.Equal(t, 40.0, req.Custom[2])

	_, err = (&allocateOptions{strategy: "random"}).request()
	assert.ErrorIs(t, err, service.ErrUnknownStrategy)

	_, err = (&allocateOptions{strategy: "equal", custom: []string{"2=40"}}).request()
	assert.Error(t, err)
}

func TestAllocateCommand_InvalidStrategyFailsBeforeBootstrap(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"allocate", "--strategy", "random"})

	err := cmd.Execute()
	assert.ErrorIs(t, err, service.ErrUnknownStrategy)
}

func TestPrintPreview(t *testing.T) {
	var out bytes.Buffer
	printPreview(&out, &service.AllocationPreview{
		Strategy:      service.StrategyEqual,
		DailyIncome:   1200,
		CurrentTotal:  130,
		ProposedTotal: 130,
		OverBudget:    true,
		Changes: []service.AllocationChange{
			{CategoryID: 1, Name: "Savings", Before: 50, After: 50, DailyAfter: 600},
		},
	})

	s := out.String()
	assert.Contains(t, s, "equal")
	assert.Contains(t, s, "Savings")
	assert.Contains(t, s, "600.00")
	assert.Contains(t, s, "警告")
}
