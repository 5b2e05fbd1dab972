package mapper

import (
	"chat-mapper/domain"
	"chat-mapper/errors"
	"chat-mapper/store"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

// DateLayout is the single textual format used for every date property.
const DateLayout = time.RFC3339Nano

const noEmoticon = "none"

// Fixed type names used for by-type queries.
const (
	TypeUser              = "User"
	TypeGroup             = "Group"
	TypeIndividualContact = "IndividualContact"
	TypeMessage           = "Message"
)

type identified interface {
	ID() int64
}

// encodeIDs joins ids with a single space. An empty collection gives "".
func encodeIDs[T identified](objects []T) string {
	ids := lo.Map(objects, func(o T, _ int) string {
		return strconv.FormatInt(o.ID(), 10)
	})
	return strings.TrimSpace(strings.Join(ids, " "))
}

// decodeIDs splits on spaces, drops empty tokens and parses each id.
func decodeIDs(value string) ([]int64, error) {
	tokens := lo.Filter(strings.Split(value, " "), func(token string, _ int) bool {
		return token != ""
	})
	ids := make([]int64, 0, len(tokens))
	for _, token := range tokens {
		id, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: id list %q: %v", errors.ErrMalformedProperty, value, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// fetchIDs decodes an id list and resolves every id through fetch, in order.
func fetchIDs[T any](value string, fetch func(id int64) (T, error)) ([]T, error) {
	ids, err := decodeIDs(value)
	if err != nil {
		return nil, err
	}
	objects := make([]T, 0, len(ids))
	for _, id := range ids {
		object, err := fetch(id)
		if err != nil {
			return nil, err
		}
		objects = append(objects, object)
	}
	return objects, nil
}

// fetchLiveIDs is fetchIDs for reference lists whose targets can be deleted
// on their own. An id whose entity is gone is logged and dropped; the next
// update of the owner rewrites the list without it.
func fetchLiveIDs[T any](s store.EntityStore, log *slog.Logger, owner, value string, fetch func(id int64) (T, error)) ([]T, error) {
	ids, err := decodeIDs(value)
	if err != nil {
		return nil, err
	}
	objects := make([]T, 0, len(ids))
	for _, id := range ids {
		object, err := fetch(id)
		if err != nil {
			if dangling(s, id, err) {
				log.Warn("dangling reference dropped", "owner", owner, "id", id)
				continue
			}
			return nil, err
		}
		objects = append(objects, object)
	}
	return objects, nil
}

// dangling reports whether err comes from id itself being absent, as opposed
// to something id refers to.
func dangling(s store.EntityStore, id int64, err error) bool {
	if !errors.Is(err, errors.ErrEntityNotFound) {
		return false
	}
	found, ferr := exists(s, id)
	return ferr == nil && !found
}

func formatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func parseDate(name, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q: %v", errors.ErrMalformedProperty, name, value, err)
	}
	return t, nil
}

func parseBool(name, value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: %s %q: %v", errors.ErrMalformedProperty, name, value, err)
	}
	return b, nil
}

func formatEmoticon(e domain.Emoticon) string {
	if e == domain.NoEmoticon {
		return noEmoticon
	}
	return strconv.Itoa(int(e))
}

func parseEmoticon(value string) (domain.Emoticon, error) {
	if value == noEmoticon {
		return domain.NoEmoticon, nil
	}
	code, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: emoticon %q: %v", errors.ErrMalformedProperty, value, err)
	}
	return domain.Emoticon(code), nil
}

func parseID(name, value string) (int64, error) {
	if value == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q: %v", errors.ErrMalformedProperty, name, value, err)
	}
	return id, nil
}

// checkType guards against an id that points at another aggregate kind.
func checkType(entity store.Entity, typeName string) error {
	if entity.TypeName != typeName {
		return fmt.Errorf("%w: entity %d is a %s, not a %s",
			errors.ErrUnexpectedType, entity.ID, entity.TypeName, typeName)
	}
	return nil
}

// exists reports whether the store holds an entity under id. Zero is never stored.
func exists(s store.EntityStore, id int64) (bool, error) {
	if id == 0 {
		return false, nil
	}
	_, err := s.FetchEntity(id)
	if errors.Is(err, errors.ErrEntityNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// updateProperties rewrites every property of entity one by one.
func updateProperties(s store.EntityStore, entity store.Entity) error {
	for _, p := range entity.Properties {
		p.EntityID = entity.ID
		if err := s.UpdateProperty(p); err != nil {
			return fmt.Errorf("update %s %d property %s: %w", entity.TypeName, entity.ID, p.Name, err)
		}
	}
	return nil
}

func requirePersisted(s store.EntityStore, id int64) error {
	found, err := exists(s, id)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: id %d", errors.ErrNotPersisted, id)
	}
	return nil
}
