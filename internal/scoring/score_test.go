package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-pipeline/internal/types"
)

func TestScore_NilProfile(t *testing.T) {
	result := Score(nil, &types.RequirementSet{})
	assert.Empty(t, result)
	assert.NotNil(t, result)
}

func TestScore_EmptyProfile(t *testing.T) {
	result := Score(&types.ProfileSnapshot{}, &types.RequirementSet{})
	assert.Empty(t, result)
}

func TestScore_RelevanceDominatesStars(t *testing.T) {
	profile := &types.ProfileSnapshot{
		Repositories: []types.RepositoryFact{
			{
				Name:            "ruby-blog",
				Description:     "A personal blog engine",
				PrimaryLanguage: "Ruby",
				StarCount:       5000,
			},
			{
				Name:            "ml-pipeline",
				Description:     "Machine learning pipeline with Python and Docker",
				PrimaryLanguage: "Python",
				Topics:          []string{"docker", "kubernetes"},
				StarCount:       3,
			},
		},
	}
	reqs := &types.RequirementSet{
		RequiredSkills:  []string{"docker", "python"},
		PreferredSkills: []string{"kubernetes"},
	}

	ranked := Score(profile, reqs)
	require.Len(t, ranked, 2)

	assert.Equal(t, "ml-pipeline", ranked[0].Repository.Name)
	assert.Equal(t, []string{"docker", "python"}, ranked[0].MatchedRequired)
	assert.Equal(t, []string{"kubernetes"}, ranked[0].MatchedPreferred)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)

	assert.Empty(t, ranked[1].MatchedRequired)
	assert.Empty(t, ranked[1].MatchedPreferred)
}

func TestScore_AliasNormalizedMatching(t *testing.T) {
	profile := &types.ProfileSnapshot{
		Repositories: []types.RepositoryFact{
			{Name: "svc", Description: "Golang service on k8s", StarCount: 0},
		},
	}
	reqs := &types.RequirementSet{RequiredSkills: []string{"go", "kubernetes"}}

	ranked := Score(profile, reqs)
	require.Len(t, ranked, 1)
	assert.Equal(t, []string{"go", "kubernetes"}, ranked[0].MatchedRequired)
	assert.InDelta(t, 6.0, ranked[0].Score, 0.001)
}

func TestScore_TieBreakByStarsThenName(t *testing.T) {
	profile := &types.ProfileSnapshot{
		Repositories: []types.RepositoryFact{
			{Name: "beta", StarCount: 10},
			{Name: "alpha", StarCount: 10},
			{Name: "gamma", StarCount: 50},
		},
	}
	reqs := &types.RequirementSet{}

	ranked := Score(profile, reqs)
	require.Len(t, ranked, 3)
	assert.Equal(t, "gamma", ranked[0].Repository.Name)
	assert.Equal(t, "alpha", ranked[1].Repository.Name)
	assert.Equal(t, "beta", ranked[2].Repository.Name)
}

func TestScore_OrderIndependentOfInputOrder(t *testing.T) {
	repos := []types.RepositoryFact{
		{Name: "one", Description: "python tooling", StarCount: 2},
		{Name: "two", Description: "docker tooling", StarCount: 2},
		{Name: "three", Description: "unrelated", StarCount: 9},
	}
	reversed := []types.RepositoryFact{repos[2], repos[1], repos[0]}
	reqs := &types.RequirementSet{RequiredSkills: []string{"docker", "python"}}

	first := Score(&types.ProfileSnapshot{Repositories: repos}, reqs)
	second := Score(&types.ProfileSnapshot{Repositories: reversed}, reqs)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Repository.Name, second[i].Repository.Name)
		assert.Equal(t, first[i].Score, second[i].Score)
	}
}
