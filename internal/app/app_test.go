package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewReadingCompanionApp_Initializers(t *testing.T) {
	app := NewReadingCompanionApp()
	require.NotNil(t, app, "NewReadingCompanionApp should not return nil")
}
