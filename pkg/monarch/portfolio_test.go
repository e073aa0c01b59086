package monarch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPortfolioService_Get(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `{
		"portfolio": {
			"performance": {
				"totalValue": 15000,
				"totalBasis": 12000,
				"totalChangePercent": 25,
				"totalChangeDollars": 3000,
				"historicalChart": [{"date": "2025-01-01", "returnPercent": 1.5}],
				"benchmarks": null
			},
			"aggregateHoldings": {
				"edges": [
					{
						"node": {
							"id": "agg-1",
							"quantity": 10,
							"basis": 1200,
							"totalValue": 1500,
							"security": {"id": "sec-1", "name": "Vanguard Total", "ticker": "VTI"},
							"holdings": [
								{"id": "h-1", "name": "VTI", "quantity": 10, "value": 1500, "account": {"id": "acc-9", "displayName": "Brokerage"}}
							]
						}
					},
					{"node": null}
				]
			}
		}
	}`

	mockTransport.On("Execute", mock.Anything, mock.Anything, mock.MatchedBy(func(vars map[string]interface{}) bool {
		input := vars["portfolioInput"].(map[string]interface{})
		_, hasEnd := input["endDate"]
		return input["startDate"] == "2025-01-01" && !hasEnd
	}), mock.Anything).Return(mockResponse, nil)

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	portfolio, err := client.Portfolio.Get(context.Background(), start, time.Time{})

	require.NoError(t, err)
	require.NotNil(t, portfolio.Performance)
	assert.Equal(t, 15000.0, portfolio.Performance.TotalValue)
	assert.Len(t, portfolio.Performance.HistoricalChart, 1)
	assert.NotNil(t, portfolio.Performance.Benchmarks)
	require.Len(t, portfolio.Holdings, 1)
	assert.Equal(t, "VTI", portfolio.Holdings[0].Security.Ticker)
	assert.Equal(t, "Brokerage", portfolio.Holdings[0].Holdings[0].Account.DisplayName)
	assert.Equal(t, 15000.0, portfolio.TotalValue())

	mockTransport.AssertExpectations(t)
}

func TestPortfolioService_Get_Empty(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Execute", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(`{"portfolio": {"performance": null, "aggregateHoldings": null}}`, nil)

	portfolio, err := client.Portfolio.Get(context.Background(), time.Time{}, time.Time{})

	require.NoError(t, err)
	assert.Nil(t, portfolio.Performance)
	assert.NotNil(t, portfolio.Holdings)
	assert.Empty(t, portfolio.Holdings)
	assert.Equal(t, 0.0, portfolio.TotalValue())
}
