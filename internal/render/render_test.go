package render_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"carousel/internal/batch"
	"carousel/internal/deps"
	"carousel/internal/logging"
	"carousel/internal/render"
)

type stubExecutor struct {
	mu       sync.Mutex
	calls    []deps.Command
	failOn   map[int]bool
	hangOn   map[int]bool
	stderrOn map[int]string
}

func (s *stubExecutor) Run(ctx context.Context, cmd deps.Command, onOutput func(string)) error {
	s.mu.Lock()
	s.calls = append(s.calls, cmd)
	s.mu.Unlock()

	frame := sequenceArg(cmd.Args)
	if s.hangOn[frame] {
		<-ctx.Done()
		return ctx.Err()
	}
	if msg, ok := s.stderrOn[frame]; ok {
		onOutput(msg)
		return errors.New("exit status 1")
	}
	if s.failOn[frame] {
		return errors.New("exit status 1")
	}
	return nil
}

func sequenceArg(args []string) int {
	for i, arg := range args {
		if arg == "--sequence" && i+1 < len(args) {
			n, _ := strconv.Atoi(args[i+1])
			return n
		}
	}
	return -1
}

func group(id, images int) batch.VideoGroup {
	g := batch.VideoGroup{ID: id}
	for i := range images {
		g.Images = append(g.Images, batch.ImageRecord{Filename: "img" + strconv.Itoa(i) + ".png", Index: i})
	}
	return g
}

func newOrchestrator(t *testing.T, exec deps.Executor, framesPerSlide int, onProgress func(render.Progress)) (*render.Orchestrator, string) {
	t.Helper()
	out := t.TempDir()
	return render.NewOrchestrator(render.Options{
		Command:        "npx",
		Args:           []string{"remotion", "still"},
		ProjectDir:     "/project",
		OutputDir:      out,
		FramesPerSlide: framesPerSlide,
		FrameTimeout:   50 * time.Millisecond,
		FrameFormat:    "png",
		Executor:       exec,
		Logger:         logging.NewNop(),
		OnProgress:     onProgress,
	}), out
}

func TestPlanFrames(t *testing.T) {
	jobs := render.PlanFrames(group(3, 2), 3)
	if len(jobs) != 6 {
		t.Fatalf("expected 6 frames, got %d", len(jobs))
	}
	for i, job := range jobs {
		if job.FrameIndex != i || job.GroupID != 3 {
			t.Fatalf("job %d has index %d group %d", i, job.FrameIndex, job.GroupID)
		}
		if wantImage := i / 3; job.Image.Index != wantImage {
			t.Fatalf("frame %d mapped to image %d, want %d", i, job.Image.Index, wantImage)
		}
		if job.LastFrameOfImage != (i%3 == 2) {
			t.Fatalf("frame %d LastFrameOfImage=%v", i, job.LastFrameOfImage)
		}
	}
	if got := len(render.PlanFrames(group(1, 4), 0)); got != 4*render.DefaultFramesPerSlide {
		t.Fatalf("default frames per slide not applied: %d", got)
	}
}

func TestFrameNames(t *testing.T) {
	if got := render.FrameFileName(7, "png"); got != "frame-0007.png" {
		t.Fatalf("unexpected frame name %q", got)
	}
	if got := render.FramePattern("jpeg"); got != "frame-%04d.jpeg" {
		t.Fatalf("unexpected pattern %q", got)
	}
	if got := render.FramesDirName(2); got != "frames2" {
		t.Fatalf("unexpected frames dir %q", got)
	}
}

func TestRenderGroupInvocations(t *testing.T) {
	exec := &stubExecutor{}
	var progress []render.Progress
	o, out := newOrchestrator(t, exec, 2, func(p render.Progress) { progress = append(progress, p) })

	outcome := o.RenderGroup(context.Background(), group(2, 3))

	if outcome.FrameCount != 6 || outcome.Completed != 6 || outcome.Failed() != 0 {
		t.Fatalf("unexpected outcome %#v", outcome)
	}
	if outcome.FramesDir != filepath.Join(out, "frames2") {
		t.Fatalf("unexpected frames dir %q", outcome.FramesDir)
	}
	if len(exec.calls) != 6 || len(progress) != 6 {
		t.Fatalf("calls=%d progress=%d, want 6/6", len(exec.calls), len(progress))
	}
	first := exec.calls[0]
	want := []string{"remotion", "still", "BatchCarousel-Video2", filepath.Join(out, "frames2", "frame-0000.png"), "--sequence", "0", "--overwrite"}
	if first.Binary != "npx" || first.Dir != "/project" || !slices.Equal(first.Args, want) {
		t.Fatalf("unexpected invocation %#v", first)
	}
	if last := progress[5]; last.Done != 6 || last.Total != 6 || last.FrameIndex != 5 {
		t.Fatalf("unexpected final progress %#v", last)
	}
}

func TestRenderGroupTimedOutFrameDoesNotStopLoop(t *testing.T) {
	exec := &stubExecutor{hangOn: map[int]bool{1: true}}
	o, _ := newOrchestrator(t, exec, 2, nil)

	outcome := o.RenderGroup(context.Background(), group(1, 2))

	if !slices.Equal(outcome.FailedFrames, []int{1}) {
		t.Fatalf("expected frame 1 to fail, got %v", outcome.FailedFrames)
	}
	if outcome.Completed != 3 || len(exec.calls) != 4 {
		t.Fatalf("later frames must still be attempted: completed=%d calls=%d", outcome.Completed, len(exec.calls))
	}
}

func TestRenderGroupRecordsFailures(t *testing.T) {
	exec := &stubExecutor{
		failOn:   map[int]bool{0: true},
		stderrOn: map[int]string{3: "Error: composition not found"},
	}
	var failed []int
	o, _ := newOrchestrator(t, exec, 2, func(p render.Progress) {
		if p.Failed {
			failed = append(failed, p.FrameIndex)
		}
	})

	outcome := o.RenderGroup(context.Background(), group(1, 2))

	if !slices.Equal(outcome.FailedFrames, []int{0, 3}) || !slices.Equal(failed, []int{0, 3}) {
		t.Fatalf("unexpected failures outcome=%v progress=%v", outcome.FailedFrames, failed)
	}
	if outcome.Completed+outcome.Failed() != outcome.FrameCount {
		t.Fatalf("completed+failed != frame count: %#v", outcome)
	}
}

func TestRenderGroupCancelledContext(t *testing.T) {
	exec := &stubExecutor{hangOn: map[int]bool{0: true, 1: true, 2: true}}
	o, _ := newOrchestrator(t, exec, 3, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome := o.RenderGroup(ctx, group(1, 1))
	if outcome.Failed() != 3 || len(exec.calls) != 3 {
		t.Fatalf("cancelled frames should be recorded as failures, got %#v", outcome)
	}
}

func TestRenderGroupEmpty(t *testing.T) {
	exec := &stubExecutor{}
	o, _ := newOrchestrator(t, exec, 2, nil)
	outcome := o.RenderGroup(context.Background(), batch.VideoGroup{ID: 1})
	if outcome.FrameCount != 0 || len(exec.calls) != 0 {
		t.Fatalf("empty group should render nothing: %#v", outcome)
	}
}

func TestRenderGroupLogsSampledProgressAtInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	orch := render.NewOrchestrator(render.Options{
		Command:        "npx",
		OutputDir:      t.TempDir(),
		FramesPerSlide: render.DefaultFramesPerSlide,
		FrameTimeout:   time.Second,
		Executor:       &stubExecutor{},
		Logger:         logger,
	})

	outcome := orch.RenderGroup(context.Background(), group(1, 4))
	if outcome.FrameCount != 480 || outcome.Failed() != 0 {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}

	var progress []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("decode log line %q: %v", line, err)
		}
		if rec["msg"] == "render progress" {
			if rec["level"] != "info" {
				t.Fatalf("progress logged at %v", rec["level"])
			}
			progress = append(progress, rec)
		}
	}
	// First frame plus one record per 5% bucket.
	if len(progress) != 21 {
		t.Fatalf("expected 21 progress records, got %d", len(progress))
	}
	last := progress[len(progress)-1]
	if last["progress"] != "Frame 480/480" || last["video_id"] != float64(1) {
		t.Fatalf("unexpected final progress record: %v", last)
	}
}
