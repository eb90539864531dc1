package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

//go:embed default_seed.yaml
var defaultSeed []byte

// Fixtures начальные данные офиса: справочник пользователей, ресурсы и бронирования
type Fixtures struct {
	Users     []UserFixture     `yaml:"users"`
	Resources []ResourceFixture `yaml:"resources"`
	Bookings  []BookingFixture  `yaml:"bookings"`
}

type UserFixture struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	AvatarURL string `yaml:"avatar_url"`
}

type ResourceFixture struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}

// BookingFixture бронирование относительно дня старта: day_offset дней + время HH:MM
type BookingFixture struct {
	ID         string `yaml:"id"`
	UserID     string `yaml:"user_id"`
	ResourceID string `yaml:"resource_id"`
	DayOffset  int    `yaml:"day_offset"`
	Start      string `yaml:"start"`
	End        string `yaml:"end"`
}

// UserStore хранилище пользователей
type UserStore interface {
	Add(ctx context.Context, user *domain.User) error
}

// ResourceStore хранилище ресурсов
type ResourceStore interface {
	Create(ctx context.Context, resource *domain.Resource) (*domain.Resource, error)
}

// BookingStore хранилище бронирований
type BookingStore interface {
	Insert(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// Parse разбирает YAML с начальными данными
func Parse(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return &f, nil
}

// LoadFile читает начальные данные из файла
func LoadFile(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadFile, path, err)
	}
	return Parse(data)
}

// Default возвращает встроенные начальные данные
func Default() (*Fixtures, error) {
	return Parse(defaultSeed)
}

// Apply записывает начальные данные в хранилища
// Бронирования размещаются на день today + day_offset в локации today.
// Проверяются ссылки на пользователей и ресурсы и корректность интервала;
// конфликты между бронированиями seed-данных не проверяются.
func (f *Fixtures) Apply(ctx context.Context, today time.Time, users UserStore, resources ResourceStore, bookings BookingStore) error {
	userIDs := make(map[string]struct{}, len(f.Users))
	for _, u := range f.Users {
		if err := users.Add(ctx, &domain.User{ID: u.ID, Name: u.Name, AvatarURL: u.AvatarURL}); err != nil {
			return fmt.Errorf("%w: user id=%s: %v", ErrApply, u.ID, err)
		}
		userIDs[u.ID] = struct{}{}
	}

	resourceIDs := make(map[string]struct{}, len(f.Resources))
	for _, r := range f.Resources {
		kind, err := domain.ParseResourceKind(r.Kind)
		if err != nil {
			return fmt.Errorf("%w: resource id=%s: %v", ErrInvalidFixture, r.ID, err)
		}
		if r.ID == "" {
			return fmt.Errorf("%w: resource %q has no id", ErrInvalidFixture, r.Name)
		}
		created, err := resources.Create(ctx, &domain.Resource{ID: r.ID, Name: r.Name, Kind: kind, X: r.X, Y: r.Y})
		if err != nil {
			return fmt.Errorf("%w: resource id=%s: %v", ErrApply, r.ID, err)
		}
		resourceIDs[created.ID] = struct{}{}
	}

	for _, b := range f.Bookings {
		if _, ok := userIDs[b.UserID]; !ok {
			return fmt.Errorf("%w: booking id=%s references unknown user %s", ErrInvalidFixture, b.ID, b.UserID)
		}
		if _, ok := resourceIDs[b.ResourceID]; !ok {
			return fmt.Errorf("%w: booking id=%s references unknown resource %s", ErrInvalidFixture, b.ID, b.ResourceID)
		}

		interval, err := b.interval(today)
		if err != nil {
			return fmt.Errorf("%w: booking id=%s: %v", ErrInvalidFixture, b.ID, err)
		}

		_, err = bookings.Insert(ctx, &domain.Booking{
			ID:         b.ID,
			UserID:     b.UserID,
			ResourceID: b.ResourceID,
			Start:      interval.Start,
			End:        interval.End,
		})
		if err != nil {
			return fmt.Errorf("%w: booking id=%s: %v", ErrApply, b.ID, err)
		}
	}

	return nil
}

func (b BookingFixture) interval(today time.Time) (domain.Interval, error) {
	day := domain.StartOfDay(today).AddDate(0, 0, b.DayOffset)

	start, err := types.NewTimeStringFromString(b.Start)
	if err != nil {
		return domain.Interval{}, err
	}
	end, err := types.NewTimeStringFromString(b.End)
	if err != nil {
		return domain.Interval{}, err
	}

	startAt, err := domain.CombineDateTime(day, start)
	if err != nil {
		return domain.Interval{}, err
	}
	endAt, err := domain.CombineDateTime(day, end)
	if err != nil {
		return domain.Interval{}, err
	}

	interval := domain.Interval{Start: startAt, End: endAt}
	if !interval.IsValid() {
		return domain.Interval{}, fmt.Errorf("start %s is not before end %s", b.Start, b.End)
	}

	return interval, nil
}
