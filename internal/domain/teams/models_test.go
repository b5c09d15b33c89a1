package teams

import (
	"reflect"
	"testing"
)

func TestTeamJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	teamType := reflect.TypeOf(Team{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"Name", "name"},
		{"Code", "code,omitempty"},
		{"Country", "country"},
		{"Founded", "founded,omitempty"},
		{"National", "national"},
		{"LogoURL", "logoUrl,omitempty"},
		{"Venue", "venue,omitempty"},
	}
	for _, fc := range fields {
		f, ok := teamType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestFoundedLabel(t *testing.T) {
	year := 1947
	zero := 0

	cases := []struct {
		name string
		team Team
		want string
	}{
		{"known", Team{Founded: &year}, "1947"},
		{"absent", Team{}, "Unknown"},
		{"zero", Team{Founded: &zero}, "Unknown"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.team.FoundedLabel("Unknown"); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
