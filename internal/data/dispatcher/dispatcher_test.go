package dispatcher

import (
	"testing"

	"github.com/atomicstack/tab-sidebar/internal/host"
)

func TestHandleStructuralEventsRebuild(t *testing.T) {
	kinds := []host.EventKind{
		host.EventWindowCreated,
		host.EventWindowRemoved,
		host.EventTabCreated,
		host.EventTabRemoved,
		host.EventTabMoved,
		host.EventGroupCreated,
		host.EventGroupRemoved,
		host.EventGroupMoved,
		host.EventGroupUpdated,
	}
	d := New()
	for _, kind := range kinds {
		res := d.Handle(host.Event{Kind: kind})
		if !res.Rebuild || res.RefreshActivation {
			t.Fatalf("%s: got %+v, want rebuild only", kind, res)
		}
	}
}

func TestHandleActivationEventsRefreshOnly(t *testing.T) {
	d := New()
	for _, kind := range []host.EventKind{host.EventWindowFocusChanged, host.EventTabActivated} {
		res := d.Handle(host.Event{Kind: kind})
		if res.Rebuild || !res.RefreshActivation {
			t.Fatalf("%s: got %+v, want refresh only", kind, res)
		}
	}
}

func TestHandleTabUpdatedSplitsByChange(t *testing.T) {
	d := New()

	res := d.Handle(host.Event{Kind: host.EventTabUpdated, Change: host.TabChange{Title: true}})
	if !res.Rebuild || res.RefreshActivation {
		t.Fatalf("title change: got %+v", res)
	}

	res = d.Handle(host.Event{Kind: host.EventTabUpdated, Change: host.TabChange{FavIcon: true}})
	if !res.Rebuild || res.RefreshActivation {
		t.Fatalf("favicon change: got %+v", res)
	}

	res = d.Handle(host.Event{Kind: host.EventTabUpdated, Change: host.TabChange{Active: true}})
	if res.Rebuild || !res.RefreshActivation {
		t.Fatalf("active change: got %+v", res)
	}

	res = d.Handle(host.Event{Kind: host.EventTabUpdated, Change: host.TabChange{Title: true, Active: true}})
	if !res.Rebuild || !res.RefreshActivation {
		t.Fatalf("mixed change: got %+v", res)
	}

	res = d.Handle(host.Event{Kind: host.EventTabUpdated})
	if res.Rebuild || res.RefreshActivation {
		t.Fatalf("irrelevant change: got %+v", res)
	}
}

func TestHandleUnknownEventIsInert(t *testing.T) {
	res := New().Handle(host.Event{Kind: host.EventUnknown})
	if res.Rebuild || res.RefreshActivation {
		t.Fatalf("got %+v", res)
	}
}
