package weather

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"geoweather.app/internal/mocks"
	"geoweather.app/internal/ports"
	"geoweather.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var testNow = time.Date(2024, 1, 18, 10, 0, 0, 0, time.UTC)

func defaultWeatherConfig() ports.WeatherConfig {
	return ports.WeatherConfig{
		EnableCache:       true,
		SnapshotTTL:       3 * time.Hour,
		MaxDistanceMeters: 5000,
		HistoryMaxDays:    62,
		HistoryOffsetDays: 7,
		HourlyHorizonDays: 7,
	}
}

type useCaseMocks struct {
	gateway  *mocks.WeatherGateway
	store    *mocks.SnapshotStore
	registry *mocks.LocationRegistry
	ledger   *mocks.HistoricalLedger
	catalog  *mocks.ConditionCatalog
	config   *mocks.ConfigProvider
	logger   *mocks.Logger
	metrics  *mocks.WeatherMetrics
}

func newUseCaseMocks(t *testing.T) *useCaseMocks {
	return &useCaseMocks{
		gateway:  mocks.NewWeatherGateway(t),
		store:    mocks.NewSnapshotStore(t),
		registry: mocks.NewLocationRegistry(t),
		ledger:   mocks.NewHistoricalLedger(t),
		catalog:  mocks.NewConditionCatalog(t),
		config:   mocks.NewConfigProvider(t),
		logger:   mocks.NewLogger(t),
		metrics:  mocks.NewWeatherMetrics(t),
	}
}

func (m *useCaseMocks) dependencies() UseCaseDependencies {
	return UseCaseDependencies{
		Gateway:  m.gateway,
		Store:    m.store,
		Registry: m.registry,
		Ledger:   m.ledger,
		Catalog:  m.catalog,
		Config:   m.config,
		Logger:   m.logger,
		Metrics:  m.metrics,
		Clock:    fixedClock{now: testNow},
	}
}

// useCase builds the use case and waits for background writes before the mocks assert
func (m *useCaseMocks) useCase(t *testing.T, cfg ports.WeatherConfig) *UseCase {
	t.Helper()

	m.config.EXPECT().GetWeatherConfig().Return(cfg).Maybe()
	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	uc, err := NewUseCase(m.dependencies())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, uc.Close(context.Background())) })
	return uc
}

func sampleBundle() *ports.WeatherBundle {
	hourly := make([]ports.HourlyWeather, 7)
	for i := range hourly {
		hourly[i] = ports.HourlyWeather{Time: []string{testNow.AddDate(0, 0, i).Format("2006-01-02") + "T00:00"}}
	}
	return &ports.WeatherBundle{
		Location: &ports.Location{Name: "Kyiv", Country: "Ukraine", Latitude: 50.44, Longitude: 30.52},
		Current:  &ports.CurrentWeather{Temperature: -3.5, ConditionText: "Light snow"},
		Daily:    []ports.DailyWeather{{Time: "2024-01-18", TemperatureMax: -1}, {Time: "2024-01-19", TemperatureMax: 0}},
		Hourly:   hourly,
	}
}

func dateOf(t time.Time) *time.Time {
	return &t
}

func TestNewUseCase_RequiresDependencies(t *testing.T) {
	tests := []struct {
		name  string
		strip func(*UseCaseDependencies)
	}{
		{"Gateway", func(d *UseCaseDependencies) { d.Gateway = nil }},
		{"Store", func(d *UseCaseDependencies) { d.Store = nil }},
		{"Registry", func(d *UseCaseDependencies) { d.Registry = nil }},
		{"Ledger", func(d *UseCaseDependencies) { d.Ledger = nil }},
		{"Catalog", func(d *UseCaseDependencies) { d.Catalog = nil }},
		{"Config", func(d *UseCaseDependencies) { d.Config = nil }},
		{"Logger", func(d *UseCaseDependencies) { d.Logger = nil }},
		{"Metrics", func(d *UseCaseDependencies) { d.Metrics = nil }},
		{"Clock", func(d *UseCaseDependencies) { d.Clock = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := newUseCaseMocks(t).dependencies()
			tt.strip(&deps)

			uc, err := NewUseCase(deps)
			assert.Nil(t, uc)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestUseCase_Current_CacheHit(t *testing.T) {
	m := newUseCaseMocks(t)
	uc := m.useCase(t, defaultWeatherConfig())

	cached := &ports.Snapshot{
		ID:       "snap-1",
		Location: ports.Location{Name: "Kyiv", Latitude: 50.45, Longitude: 30.52},
		Current:  &ports.CurrentWeather{Temperature: -2},
	}
	m.store.EXPECT().FindNear(mock.Anything, 50.46, 30.53, ports.ProjectCurrent()).Return(cached, nil).Once()
	m.metrics.EXPECT().RecordCacheHit("current").Once()

	result, err := uc.Current(context.Background(), Query{Latitude: 50.46, Longitude: 30.53})
	require.NoError(t, err)
	assert.Equal(t, "Kyiv", result.Location.Name)
	assert.Equal(t, -2.0, result.Current.Temperature)
	assert.Empty(t, result.Daily)
	m.gateway.AssertNotCalled(t, "FetchPoint", mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Current_CacheMissFetchesAndStores(t *testing.T) {
	m := newUseCaseMocks(t)
	uc := m.useCase(t, defaultWeatherConfig())

	m.store.EXPECT().FindNear(mock.Anything, 50.45, 30.52, ports.ProjectCurrent()).
		Return(nil, errors.NewNotFoundError("no snapshot near point")).Once()
	m.metrics.EXPECT().RecordCacheMiss("current").Once()
	m.gateway.EXPECT().FetchPoint(mock.Anything, 50.45, 30.52).Return(sampleBundle(), nil).Once()
	m.store.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(s *ports.Snapshot) bool {
		return s.Location.Latitude == 50.45 &&
			s.Location.Longitude == 30.52 &&
			s.Location.Name == "Kyiv" &&
			s.Current != nil &&
			len(s.Daily) == 2 &&
			len(s.Hourly) == 7 &&
			s.CapturedAt.Equal(testNow)
	})).Return(nil).Once()

	result, err := uc.Current(context.Background(), Query{Latitude: 50.45, Longitude: 30.52})
	require.NoError(t, err)
	assert.Equal(t, "Light snow", result.Current.ConditionText)
	assert.Empty(t, result.Daily)
	assert.Empty(t, result.Hourly)
	assert.Equal(t, 50.45, result.Location.Latitude)

	require.NoError(t, uc.Close(context.Background()))
}

func TestUseCase_Daily_SnapshotWithoutDailyIsMiss(t *testing.T) {
	m := newUseCaseMocks(t)
	uc := m.useCase(t, defaultWeatherConfig())

	partial := &ports.Snapshot{ID: "snap-1", Current: &ports.CurrentWeather{}}
	m.store.EXPECT().FindNear(mock.Anything, 10.0, 20.0, ports.ProjectDaily()).Return(partial, nil).Once()
	m.metrics.EXPECT().RecordCacheMiss("daily").Once()
	m.gateway.EXPECT().FetchPoint(mock.Anything, 10.0, 20.0).Return(sampleBundle(), nil).Once()
	m.store.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil).Once()

	result, err := uc.Daily(context.Background(), Query{Latitude: 10, Longitude: 20})
	require.NoError(t, err)
	assert.Len(t, result.Daily, 2)
	assert.Nil(t, result.Current)
}

func TestUseCase_Current_LookupFailure(t *testing.T) {
	m := newUseCaseMocks(t)
	uc := m.useCase(t, defaultWeatherConfig())

	m.store.EXPECT().FindNear(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, stderrors.New("connection refused")).Once()

	_, err := uc.Current(context.Background(), Query{Latitude: 1, Longitude: 2})
	assert.True(t, errors.IsStorageError(err))
}

func TestUseCase_Current_UpstreamFailure(t *testing.T) {
	m := newUseCaseMocks(t)
	uc := m.useCase(t, defaultWeatherConfig())

	m.store.EXPECT().FindNear(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.NewNotFoundError("no snapshot near point")).Once()
	m.metrics.EXPECT().RecordCacheMiss("current").Once()
	m.gateway.EXPECT().FetchPoint(mock.Anything, 1.0, 2.0).
		Return(nil, errors.NewUpstreamUnavailableError("forecast provider failed", nil)).Once()

	_, err := uc.Current(context.Background(), Query{Latitude: 1, Longitude: 2})
	assert.True(t, errors.IsUpstreamUnavailableError(err))
}

func TestUseCase_Current_SnapshotWriteFailureIsSuppressed(t *testing.T) {
	m := newUseCaseMocks(t)
	uc := m.useCase(t, defaultWeatherConfig())

	m.store.EXPECT().FindNear(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.NewNotFoundError("no snapshot near point")).Once()
	m.metrics.EXPECT().RecordCacheMiss("current").Once()
	m.gateway.EXPECT().FetchPoint(mock.Anything, mock.Anything, mock.Anything).Return(sampleBundle(), nil).Once()
	m.store.EXPECT().Insert(mock.Anything, mock.Anything).Return(stderrors.New("disk full")).Once()
	m.metrics.EXPECT().RecordSnapshotWriteFailure().Once()

	result, err := uc.Current(context.Background(), Query{Latitude: 1, Longitude: 2})
	require.NoError(t, err)
	assert.NotNil(t, result.Current)

	require.NoError(t, uc.Close(context.Background()))
}

func TestUseCase_Current_CacheDisabled(t *testing.T) {
	m := newUseCaseMocks(t)
	cfg := defaultWeatherConfig()
	cfg.EnableCache = false
	uc := m.useCase(t, cfg)

	m.gateway.EXPECT().FetchPoint(mock.Anything, 1.0, 2.0).Return(sampleBundle(), nil).Once()

	result, err := uc.Current(context.Background(), Query{Latitude: 1, Longitude: 2})
	require.NoError(t, err)
	assert.NotNil(t, result.Current)

	require.NoError(t, uc.Close(context.Background()))
	m.store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestUseCase_InvalidCoordinates(t *testing.T) {
	m := newUseCaseMocks(t)
	uc := m.useCase(t, defaultWeatherConfig())
	ctx := context.Background()

	_, err := uc.Current(ctx, Query{Latitude: 91, Longitude: 0})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Daily(ctx, Query{Latitude: 0, Longitude: -181})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.History(ctx, Query{Latitude: -90.5, Longitude: 0, Date: dateOf(testNow), Days: -1})
	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_Hourly_DayOffsets(t *testing.T) {
	today := time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
	}{
		{"Today", today},
		{"Tomorrow", today.AddDate(0, 0, 1)},
		{"LastDayOfHorizon", today.AddDate(0, 0, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newUseCaseMocks(t)
			uc := m.useCase(t, defaultWeatherConfig())

			date := tt.date.Format("2006-01-02")
			cached := &ports.Snapshot{ID: "snap-1", Hourly: []ports.HourlyWeather{{Time: []string{date + "T00:00"}}}}
			m.store.EXPECT().FindNear(mock.Anything, 1.0, 2.0, ports.ProjectHourlyDate(date)).Return(cached, nil).Once()
			m.metrics.EXPECT().RecordCacheHit("hourly").Once()

			result, err := uc.Hourly(context.Background(), Query{Latitude: 1, Longitude: 2, Date: dateOf(tt.date)})
			require.NoError(t, err)
			require.Len(t, result.Hourly, 1)
			assert.Equal(t, date+"T00:00", result.Hourly[0].Time[0])
		})
	}
}

func TestUseCase_Hourly_SnapshotWithoutRequestedDayIsMiss(t *testing.T) {
	m := newUseCaseMocks(t)
	uc := m.useCase(t, defaultWeatherConfig())

	// captured the evening before, its buckets start a day early
	stale := &ports.Snapshot{ID: "snap-1", Hourly: []ports.HourlyWeather{{Time: []string{"2024-01-17T00:00"}}}}
	m.store.EXPECT().FindNear(mock.Anything, 1.0, 2.0, ports.ProjectHourlyDate("2024-01-18")).Return(stale, nil).Once()
	m.metrics.EXPECT().RecordCacheMiss("hourly").Once()
	m.gateway.EXPECT().FetchPoint(mock.Anything, 1.0, 2.0).Return(sampleBundle(), nil).Once()
	m.store.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil).Once()

	result, err := uc.Hourly(context.Background(), Query{Latitude: 1, Longitude: 2, Date: dateOf(day(2024, 1, 18))})
	require.NoError(t, err)
	require.Len(t, result.Hourly, 1)
	assert.Equal(t, "2024-01-18T00:00", result.Hourly[0].Time[0])
}

func TestUseCase_Hourly_UpstreamWithoutRequestedDay(t *testing.T) {
	m := newUseCaseMocks(t)
	cfg := defaultWeatherConfig()
	cfg.EnableCache = false
	uc := m.useCase(t, cfg)

	bundle := sampleBundle()
	bundle.Hourly = bundle.Hourly[:3]
	m.gateway.EXPECT().FetchPoint(mock.Anything, 1.0, 2.0).Return(bundle, nil).Once()

	_, err := uc.Hourly(context.Background(), Query{Latitude: 1, Longitude: 2, Date: dateOf(day(2024, 1, 24))})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUseCase_Hourly_MissReturnsRequestedDay(t *testing.T) {
	m := newUseCaseMocks(t)
	uc := m.useCase(t, defaultWeatherConfig())

	m.store.EXPECT().FindNear(mock.Anything, 1.0, 2.0, ports.ProjectHourlyDate("2024-01-21")).
		Return(nil, errors.NewNotFoundError("no snapshot near point")).Once()
	m.metrics.EXPECT().RecordCacheMiss("hourly").Once()
	m.gateway.EXPECT().FetchPoint(mock.Anything, 1.0, 2.0).Return(sampleBundle(), nil).Once()
	m.store.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(s *ports.Snapshot) bool {
		return len(s.Hourly) == 7
	})).Return(nil).Once()

	result, err := uc.Hourly(context.Background(), Query{Latitude: 1, Longitude: 2, Date: dateOf(time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC))})
	require.NoError(t, err)
	require.Len(t, result.Hourly, 1)
	assert.Equal(t, []string{"2024-01-21T00:00"}, result.Hourly[0].Time)
}

func TestUseCase_Hourly_Rejections(t *testing.T) {
	today := time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		date       *time.Time
		validation bool
	}{
		{"MissingDate", nil, true},
		{"Yesterday", dateOf(today.AddDate(0, 0, -1)), false},
		{"BeyondHorizon", dateOf(today.AddDate(0, 0, 7)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newUseCaseMocks(t)
			uc := m.useCase(t, defaultWeatherConfig())

			_, err := uc.Hourly(context.Background(), Query{Latitude: 1, Longitude: 2, Date: tt.date})
			if tt.validation {
				assert.True(t, errors.IsValidationError(err))
			} else {
				assert.True(t, errors.IsOutOfRangeError(err))
			}
		})
	}
}

func TestUseCase_History_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		date       *time.Time
		days       int
		validation bool
	}{
		{"MissingDate", nil, -5, true},
		{"ZeroDays", dateOf(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)), 0, true},
		{"StartsToday", dateOf(time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC)), 3, false},
		{"EndsInsideOffset", dateOf(time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)), -5, false},
		{"ForwardRunsIntoOffset", dateOf(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)), 20, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newUseCaseMocks(t)
			uc := m.useCase(t, defaultWeatherConfig())

			_, err := uc.History(context.Background(), Query{Latitude: 40, Longitude: -3, Date: tt.date, Days: tt.days})
			if tt.validation {
				assert.True(t, errors.IsValidationError(err))
			} else {
				assert.True(t, errors.IsOutOfRangeError(err))
			}
		})
	}
}

func archiveBundle(start, end time.Time, location *ports.Location) *ports.WeatherBundle {
	bundle := &ports.WeatherBundle{Location: location}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		bundle.Daily = append(bundle.Daily, ports.DailyWeather{
			Time:           d.Format("2006-01-02"),
			TemperatureMax: float64(d.Day()),
		})
	}
	return bundle
}

func TestUseCase_History_BackfillsEmptyLedgerByMonth(t *testing.T) {
	m := newUseCaseMocks(t)
	uc := m.useCase(t, defaultWeatherConfig())
	madrid := &ports.Location{Name: "Madrid", Country: "Spain", Latitude: 40.0, Longitude: -3.0}

	m.registry.EXPECT().FindNear(mock.Anything, 40.0, -3.0).
		Return(nil, errors.NewNotFoundError("no location near point")).Once()
	m.metrics.EXPECT().RecordCacheMiss("history").Once()

	december := ports.RangeRequest{Latitude: 40, Longitude: -3, Start: day(2023, 12, 1), End: day(2023, 12, 31), IncludeLocation: true}
	january := ports.RangeRequest{Latitude: 40, Longitude: -3, Start: day(2024, 1, 1), End: day(2024, 1, 11)}
	m.gateway.EXPECT().FetchRange(mock.Anything, december).Return(archiveBundle(december.Start, december.End, madrid), nil).Once()
	m.gateway.EXPECT().FetchRange(mock.Anything, january).Return(archiveBundle(january.Start, january.End, nil), nil).Once()

	m.registry.EXPECT().FindOrCreate(mock.Anything, 40.0, -3.0, *madrid).Return("loc-1", nil).Once()
	m.ledger.EXPECT().InsertMany(mock.Anything, mock.MatchedBy(func(r []ports.HistoricalRecord) bool {
		return len(r) == 31 && r[0].LocationID == "loc-1"
	})).Return(int64(31), nil).Once()
	m.ledger.EXPECT().InsertMany(mock.Anything, mock.MatchedBy(func(r []ports.HistoricalRecord) bool {
		return len(r) == 11 && r[0].LocationID == "loc-1"
	})).Return(int64(11), nil).Once()
	m.metrics.EXPECT().RecordBackfill(31).Once()
	m.metrics.EXPECT().RecordBackfill(11).Once()

	result, err := uc.History(context.Background(), Query{
		Latitude:     40,
		Longitude:    -3,
		Date:         dateOf(day(2024, 1, 10)),
		Days:         -20,
		WithLocation: true,
	})
	require.NoError(t, err)

	require.Len(t, result.Daily, 20)
	assert.Equal(t, "2024-01-10", result.Daily[0].Time)
	assert.Equal(t, "2023-12-22", result.Daily[19].Time)
	require.NotNil(t, result.Location)
	assert.Equal(t, "Madrid", result.Location.Name)
}

func TestUseCase_History_LedgerCoversRange(t *testing.T) {
	m := newUseCaseMocks(t)
	uc := m.useCase(t, defaultWeatherConfig())

	record := &ports.LocationRecord{ID: "loc-1", Location: ports.Location{Name: "Madrid"}}
	m.registry.EXPECT().FindNear(mock.Anything, 40.0, -3.0).Return(record, nil).Once()
	m.ledger.EXPECT().FindRange(mock.Anything, "loc-1", day(2024, 1, 1), day(2024, 1, 5)).
		Return(ledgerRecords("loc-1", day(2024, 1, 1), day(2024, 1, 5)), nil).Once()
	m.metrics.EXPECT().RecordCacheHit("history").Once()

	result, err := uc.History(context.Background(), Query{Latitude: 40, Longitude: -3, Date: dateOf(day(2024, 1, 1)), Days: 5})
	require.NoError(t, err)
	assert.Len(t, result.Daily, 5)
	assert.Nil(t, result.Location)
}

func TestUseCase_History_FillsAfterExistingData(t *testing.T) {
	m := newUseCaseMocks(t)
	uc := m.useCase(t, defaultWeatherConfig())

	record := &ports.LocationRecord{ID: "loc-1", Location: ports.Location{Name: "Madrid"}}
	m.registry.EXPECT().FindNear(mock.Anything, 40.0, -3.0).Return(record, nil).Once()
	m.ledger.EXPECT().FindRange(mock.Anything, "loc-1", day(2023, 12, 22), day(2024, 1, 10)).
		Return(ledgerRecords("loc-1", day(2023, 12, 22), day(2023, 12, 31)), nil).Once()
	m.metrics.EXPECT().RecordCacheMiss("history").Once()

	january := ports.RangeRequest{Latitude: 40, Longitude: -3, Start: day(2024, 1, 1), End: day(2024, 1, 11)}
	m.gateway.EXPECT().FetchRange(mock.Anything, january).Return(archiveBundle(january.Start, january.End, nil), nil).Once()
	m.ledger.EXPECT().InsertMany(mock.Anything, mock.Anything).Return(int64(11), nil).Once()
	m.metrics.EXPECT().RecordBackfill(11).Once()

	result, err := uc.History(context.Background(), Query{
		Latitude:     40,
		Longitude:    -3,
		Date:         dateOf(day(2024, 1, 10)),
		Days:         -20,
		WithLocation: true,
	})
	require.NoError(t, err)
	assert.Len(t, result.Daily, 20)
	assert.Equal(t, "Madrid", result.Location.Name)
	m.registry.AssertNotCalled(t, "FindOrCreate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_History_StorageFailures(t *testing.T) {
	query := Query{Latitude: 40, Longitude: -3, Date: dateOf(day(2024, 1, 10)), Days: -3}

	t.Run("RegistryLookup", func(t *testing.T) {
		m := newUseCaseMocks(t)
		uc := m.useCase(t, defaultWeatherConfig())
		m.registry.EXPECT().FindNear(mock.Anything, mock.Anything, mock.Anything).Return(nil, stderrors.New("db down")).Once()

		_, err := uc.History(context.Background(), query)
		assert.True(t, errors.IsStorageError(err))
	})

	t.Run("LedgerRead", func(t *testing.T) {
		m := newUseCaseMocks(t)
		uc := m.useCase(t, defaultWeatherConfig())
		m.registry.EXPECT().FindNear(mock.Anything, mock.Anything, mock.Anything).Return(&ports.LocationRecord{ID: "loc-1"}, nil).Once()
		m.ledger.EXPECT().FindRange(mock.Anything, "loc-1", mock.Anything, mock.Anything).Return(nil, stderrors.New("db down")).Once()

		_, err := uc.History(context.Background(), query)
		assert.True(t, errors.IsStorageError(err))
	})

	t.Run("LedgerWrite", func(t *testing.T) {
		m := newUseCaseMocks(t)
		uc := m.useCase(t, defaultWeatherConfig())
		m.registry.EXPECT().FindNear(mock.Anything, mock.Anything, mock.Anything).Return(&ports.LocationRecord{ID: "loc-1"}, nil).Once()
		m.ledger.EXPECT().FindRange(mock.Anything, "loc-1", mock.Anything, mock.Anything).Return(nil, nil).Once()
		m.metrics.EXPECT().RecordCacheMiss("history").Once()
		m.gateway.EXPECT().FetchRange(mock.Anything, mock.Anything).
			Return(archiveBundle(day(2024, 1, 1), day(2024, 1, 11), nil), nil).Once()
		m.ledger.EXPECT().InsertMany(mock.Anything, mock.Anything).Return(int64(0), stderrors.New("disk full")).Once()

		_, err := uc.History(context.Background(), query)
		assert.True(t, errors.IsStorageError(err))
	})
}

func TestUseCase_History_UpstreamFailure(t *testing.T) {
	m := newUseCaseMocks(t)
	uc := m.useCase(t, defaultWeatherConfig())

	m.registry.EXPECT().FindNear(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.NewNotFoundError("no location near point")).Once()
	m.metrics.EXPECT().RecordCacheMiss("history").Once()
	m.gateway.EXPECT().FetchRange(mock.Anything, mock.Anything).
		Return(nil, errors.NewUpstreamUnavailableError("archive provider failed", nil)).Once()

	_, err := uc.History(context.Background(), Query{Latitude: 40, Longitude: -3, Date: dateOf(day(2024, 1, 10)), Days: -3})
	assert.True(t, errors.IsUpstreamUnavailableError(err))
	m.ledger.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
}

func TestUseCase_History_CacheDisabled(t *testing.T) {
	m := newUseCaseMocks(t)
	cfg := defaultWeatherConfig()
	cfg.EnableCache = false
	uc := m.useCase(t, cfg)

	req := ports.RangeRequest{Latitude: 40, Longitude: -3, Start: day(2024, 1, 8), End: day(2024, 1, 10), IncludeLocation: true}
	m.gateway.EXPECT().FetchRange(mock.Anything, req).
		Return(archiveBundle(req.Start, req.End, &ports.Location{Name: "Madrid"}), nil).Once()

	result, err := uc.History(context.Background(), Query{
		Latitude:     40,
		Longitude:    -3,
		Date:         dateOf(day(2024, 1, 10)),
		Days:         -3,
		WithLocation: true,
	})
	require.NoError(t, err)
	assert.Len(t, result.Daily, 3)
	assert.Equal(t, "2024-01-10", result.Daily[0].Time)
	assert.Equal(t, "Madrid", result.Location.Name)
}

func TestUseCase_Conditions(t *testing.T) {
	m := newUseCaseMocks(t)
	uc := m.useCase(t, defaultWeatherConfig())

	m.catalog.EXPECT().All().Return([]ports.Condition{{Code: 1000, Day: "Sunny", Night: "Clear", Icon: 113}}).Once()

	conditions := uc.Conditions(context.Background())
	require.Len(t, conditions, 1)
	assert.Equal(t, "Sunny", conditions[0].Day)
}

func TestUseCase_Close_WaitsForPendingWrites(t *testing.T) {
	m := newUseCaseMocks(t)
	uc := m.useCase(t, defaultWeatherConfig())

	release := make(chan struct{})
	m.store.EXPECT().FindNear(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.NewNotFoundError("no snapshot near point")).Once()
	m.metrics.EXPECT().RecordCacheMiss("current").Once()
	m.gateway.EXPECT().FetchPoint(mock.Anything, mock.Anything, mock.Anything).Return(sampleBundle(), nil).Once()
	m.store.EXPECT().Insert(mock.Anything, mock.Anything).RunAndReturn(func(ctx context.Context, s *ports.Snapshot) error {
		<-release
		return nil
	}).Once()

	_, err := uc.Current(context.Background(), Query{Latitude: 1, Longitude: 2})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, uc.Close(ctx), context.DeadlineExceeded)

	close(release)
	assert.NoError(t, uc.Close(context.Background()))
}
