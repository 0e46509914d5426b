package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/diogo/gemichat/internal/models"
)

func newTestSession() *Session {
	st := NewStore(testDefaults(), 0)
	return st.GetOrCreate("test")
}

func TestAppendPreservesOrder(t *testing.T) {
	s := newTestSession()

	s.AppendTurn(models.NewUserTurn("first", nil))
	s.AppendTurn(models.NewAssistantTurn("second"))
	s.AppendTurn(models.NewErrorTurn("third"))

	history := s.History()
	if len(history) != 3 {
		t.Fatalf("len = %d", len(history))
	}
	for i, want := range []string{"first", "second", "third"} {
		if history[i].Text != want {
			t.Errorf("history[%d].Text = %q, want %q", i, history[i].Text, want)
		}
	}
	if !history[2].IsError {
		t.Error("error turn lost its flag")
	}
}

func TestHistoryIsSnapshot(t *testing.T) {
	s := newTestSession()
	s.AppendTurn(models.NewUserTurn("one", nil))

	snap := s.History()
	s.AppendTurn(models.NewUserTurn("two", nil))

	if len(snap) != 1 {
		t.Errorf("snapshot grew after append: len = %d", len(snap))
	}
}

func TestResetClearsTurnsKeepsConfig(t *testing.T) {
	s := newTestSession()

	model := models.ModelPro
	temp := 0.2
	if err := s.SetConfig(models.ConfigUpdate{ModelName: &model, Temperature: &temp}); err != nil {
		t.Fatalf("SetConfig failed: %v", err)
	}
	s.AppendTurn(models.NewUserTurn("hello", nil))

	s.Reset()

	if s.Len() != 0 {
		t.Errorf("Len after reset = %d", s.Len())
	}
	cfg := s.Config()
	if cfg.ModelName != models.ModelPro || cfg.Temperature != 0.2 {
		t.Errorf("config lost on reset: %+v", cfg)
	}
}

func TestSetConfigRetainsOnFailure(t *testing.T) {
	s := newTestSession()

	bad := "made-up-model"
	if err := s.SetConfig(models.ConfigUpdate{ModelName: &bad}); err == nil {
		t.Fatal("expected error")
	}
	if s.Config().ModelName != models.ModelFlash {
		t.Errorf("model changed on failed update: %s", s.Config().ModelName)
	}
}

func TestAttachment(t *testing.T) {
	s := newTestSession()

	img := &models.ImageAttachment{FileName: "a.png", MIMEType: "image/png", Data: []byte{9}}
	s.AppendTurn(models.NewUserTurn("look", img))
	s.AppendTurn(models.NewAssistantTurn("nice"))

	if got := s.Attachment(0); got == nil || got.FileName != "a.png" {
		t.Errorf("Attachment(0) = %+v", got)
	}
	if s.Attachment(1) != nil {
		t.Error("text turn returned an attachment")
	}
	if s.Attachment(-1) != nil || s.Attachment(99) != nil {
		t.Error("out-of-range index returned an attachment")
	}
}

func TestConcurrentAppends(t *testing.T) {
	s := newTestSession()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.AppendTurn(models.NewUserTurn(fmt.Sprintf("msg-%d", i), nil))
		}(i)
	}
	wg.Wait()

	if s.Len() != 100 {
		t.Errorf("Len = %d, want 100", s.Len())
	}
}
