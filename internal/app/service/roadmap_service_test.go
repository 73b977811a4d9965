package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"learnpath_backend/internal/common"
)

func TestRoadmapCatalog(t *testing.T) {
	t.Parallel()

	svc := NewRoadmapService()

	summaries := svc.List()
	require.Len(t, summaries, 3)
	require.Equal(t, "web-dev", summaries[0].Key)
	require.Equal(t, "ml-eng", summaries[1].Key)
	require.Equal(t, "devops", summaries[2].Key)

	webDev, err := svc.Get("web-dev")
	require.NoError(t, err)
	require.Equal(t, "Full Stack Web Development", webDev.Title)
	require.Len(t, webDev.Steps, 6)
	require.Contains(t, webDev.Jobs, "Full Stack Developer")

	mlEng, err := svc.Get("ml-eng")
	require.NoError(t, err)
	require.Empty(t, mlEng.Steps)
	require.Len(t, mlEng.Jobs, 3)
}

func TestRoadmapGet_Unknown(t *testing.T) {
	t.Parallel()

	svc := NewRoadmapService()

	_, err := svc.Get("quantum-basket-weaving")
	require.True(t, errors.Is(err, common.ErrNotFound))
	require.Equal(t, "Course not found!", err.Error())
}
