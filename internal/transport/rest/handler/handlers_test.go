package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/tj/assert"

	"github.com/jeremiedurand/climate-stats-api/internal/model"
	"github.com/jeremiedurand/climate-stats-api/internal/service"
	mock "github.com/jeremiedurand/climate-stats-api/internal/transport/rest/handler/mock"
)

var errTest = errors.New("test error")

func TestExecuteClimateStatsHandler(t *testing.T) {
	okBody := `{"index":"climate_public_daily_data","property":"TOTAL_PRECIPITATION","calculations":["mean"]}`

	cases := []struct {
		name           string
		body           string
		expectedStatus int
		serviceResult  *model.FeatureCollection
		serviceError   error
		isMockCalled   bool
	}{
		{
			name:           "ok",
			body:           okBody,
			expectedStatus: http.StatusOK,
			serviceResult:  &model.FeatureCollection{Type: "FeatureCollection"},
			isMockCalled:   true,
		},
		{
			name:           "service error",
			body:           okBody,
			expectedStatus: http.StatusInternalServerError,
			serviceError:   errTest,
			isMockCalled:   true,
		},
		{
			name:           "no matching records",
			body:           okBody,
			expectedStatus: http.StatusNotFound,
			serviceError:   fmt.Errorf("failed to evaluate: %w", service.ErrNoMatchingRecords),
			isMockCalled:   true,
		},
		{
			name:           "invalid policy reported by the service",
			body:           okBody,
			expectedStatus: http.StatusBadRequest,
			serviceError:   model.ErrInvalidMissingDataOption,
			isMockCalled:   true,
		},
		{
			name:           "invalid body",
			body:           `{"index":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing index",
			body:           `{"property":"TOTAL_PRECIPITATION"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing property",
			body:           `{"index":"climate_public_daily_data"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unsupported missing data option",
			body:           `{"index":"climate_public_daily_data","property":"TOTAL_PRECIPITATION","missing_data_option":7}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mock.NewMockClimateStatsService(ctrl)
			s := NewClimateStatsServer(mockService)

			if tc.isMockCalled {
				mockService.EXPECT().
					GetClimateStats(gomock.Any(), gomock.Any()).
					Return(tc.serviceResult, tc.serviceError)
			}

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/processes/climate-stats/execution", bytes.NewReader([]byte(tc.body)))

			s.ExecuteClimateStatsHandler(w, r)

			assert.Equal(t, tc.expectedStatus, w.Result().StatusCode)
			assert.Equal(t, "application/json", w.Result().Header.Get("Content-Type"))

			defer func() {
				err := w.Result().Body.Close()
				assert.Nil(t, err)
			}()

			if tc.expectedStatus == http.StatusOK {
				var collection model.FeatureCollection
				err := json.NewDecoder(w.Result().Body).Decode(&collection)
				assert.Nil(t, err)
				assert.Equal(t, tc.serviceResult, &collection)
				return
			}

			var resBody errorResponse
			err := json.NewDecoder(w.Result().Body).Decode(&resBody)
			assert.Nil(t, err)
			assert.Equal(t, tc.expectedStatus, resBody.Code)
			assert.NotEqual(t, "", resBody.Message)
		})
	}
}

func TestExecuteClimateStatsHandlerPassesRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockClimateStatsService(ctrl)
	s := NewClimateStatsServer(mockService)

	expectedReq := &model.StatsRequest{
		Index:             "climate_public_hourly_data",
		Calculations:      []string{"max", "count above threshold"},
		Property:          "MEAN_TEMPERATURE",
		StationIDs:        []int64{4333},
		Threshold:         25.5,
		MissingDataOption: model.PolicyWMO,
		Years:             []int{1989},
		Hours:             []int{0, 12},
	}

	mockService.EXPECT().
		GetClimateStats(gomock.Any(), expectedReq).
		Return(&model.FeatureCollection{Type: "FeatureCollection"}, nil)

	body := `{
		"index": "climate_public_hourly_data",
		"calculations": ["max", "count above threshold"],
		"property": "MEAN_TEMPERATURE",
		"stations_ids": [4333],
		"threshold": 25.5,
		"missing_data_option": "WMO",
		"years": [1989],
		"hours": [0, 12]
	}`

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/processes/climate-stats/execution", bytes.NewReader([]byte(body)))

	s.ExecuteClimateStatsHandler(w, r)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestProcessMetadataHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := NewClimateStatsServer(mock.NewMockClimateStatsService(ctrl))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/processes/climate-stats", nil)

	s.ProcessMetadataHandler(w, r)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Equal(t, "application/json", w.Result().Header.Get("Content-Type"))

	var metadata map[string]interface{}
	err := json.NewDecoder(w.Result().Body).Decode(&metadata)
	assert.Nil(t, err)

	assert.Equal(t, "climate-stats", metadata["id"])
	assert.NotNil(t, metadata["inputs"])
}
