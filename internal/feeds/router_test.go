package feeds

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routeSet(ids ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func TestEndpointsForRoutesSharedGroup(t *testing.T) {
	// A, C and the A express all ride the same feed.
	endpoints, err := EndpointsForRoutes(routeSet("A", "C", "AX"))

	require.NoError(t, err)
	assert.Equal(t, []Endpoint{EndpointACE}, endpoints)
}

func TestEndpointsForRoutesNumbered(t *testing.T) {
	endpoints, err := EndpointsForRoutes(routeSet("1", "2", "3"))

	require.NoError(t, err)
	assert.Equal(t, []Endpoint{EndpointDefault}, endpoints)
}

func TestEndpointsForRoutesExpressVariant(t *testing.T) {
	endpoints, err := EndpointsForRoutes(routeSet("6X"))

	require.NoError(t, err)
	assert.Equal(t, []Endpoint{EndpointDefault}, endpoints)
}

func TestEndpointsForRoutesAllGroups(t *testing.T) {
	endpoints, err := EndpointsForRoutes(routeSet(
		"A", "B", "G", "J", "N", "L", "SI", "7",
	))

	require.NoError(t, err)
	assert.Len(t, endpoints, 8)
	assert.ElementsMatch(t, []Endpoint{
		EndpointACE, EndpointBDFM, EndpointG, EndpointJZ,
		EndpointNQRW, EndpointL, EndpointSIR, EndpointDefault,
	}, endpoints)
}

func TestEndpointsForRoutesNoDuplicates(t *testing.T) {
	endpoints, err := EndpointsForRoutes(routeSet("N", "Q", "R", "W", "J", "Z"))

	require.NoError(t, err)
	assert.Equal(t, []Endpoint{EndpointJZ, EndpointNQRW}, endpoints)
}

func TestEndpointsForRoutesExcludesDefaultWithoutNumbered(t *testing.T) {
	endpoints, err := EndpointsForRoutes(routeSet("A", "L", "G"))

	require.NoError(t, err)
	assert.NotContains(t, endpoints, EndpointDefault)
}

func TestEndpointsForRoutesUnknownRoute(t *testing.T) {
	_, err := EndpointsForRoutes(routeSet("X9"))

	var unknownErr *UnknownRouteError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "X9", unknownErr.Route)
}

func TestEndpointsForRoutesUnknownRouteAbortsWholeMapping(t *testing.T) {
	// Valid routes in the set do not save the request.
	endpoints, err := EndpointsForRoutes(routeSet("A", "1", "X9", "L"))

	assert.Nil(t, endpoints)
	var unknownErr *UnknownRouteError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "X9", unknownErr.Route)
}

func TestEndpointsForRoutesDeterministicOrder(t *testing.T) {
	first, err := EndpointsForRoutes(routeSet("A", "1", "L", "G", "N"))
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		again, err := EndpointsForRoutes(routeSet("A", "1", "L", "G", "N"))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEndpointsForRoutesEmptySet(t *testing.T) {
	endpoints, err := EndpointsForRoutes(routeSet())

	require.NoError(t, err)
	assert.Empty(t, endpoints)
}
