package service

import (
	"context"
	"errors"
	"testing"

	"campus-events/backend/internal/dto"
	"campus-events/backend/internal/model"
)

// ── 测试辅助 ──

type participationFixture struct {
	env       *testEnv
	svc       ParticipationService
	studentID int64
	eventID   int64
}

func setupTestParticipationService(strictRating bool) *participationFixture {
	env := newTestEnv()
	c := env.addCollege("计算机学院")
	s := env.addStudent("zhangsan", c.CollegeID)
	e := env.addEvent("Go 工作坊", "workshop", c.CollegeID)
	return &participationFixture{
		env:       env,
		svc:       NewParticipationService(env.repo, strictRating, env.logger),
		studentID: s.StudentID,
		eventID:   e.EventID,
	}
}

// ── Register 测试 ──

func TestParticipationService_Register_Duplicate(t *testing.T) {
	f := setupTestParticipationService(true)
	ctx := context.Background()
	req := &dto.RegisterRequest{StudentID: flex(f.studentID), EventID: flex(f.eventID)}

	if err := f.svc.Register(ctx, req); err != nil {
		t.Fatalf("首次报名应成功: %v", err)
	}
	err := f.svc.Register(ctx, req)
	if !errors.Is(err, ErrDuplicateOrInvalidReference) {
		t.Errorf("期望 ErrDuplicateOrInvalidReference，实际: %v", err)
	}
	if len(f.env.store.registration) != 1 {
		t.Errorf("期望仅 1 条报名记录，实际 %d", len(f.env.store.registration))
	}
}

func TestParticipationService_Register_InvalidIDs(t *testing.T) {
	f := setupTestParticipationService(true)

	tests := []struct {
		name      string
		studentID int64
		eventID   int64
	}{
		{"学生不存在", 999, f.eventID},
		{"活动不存在", f.studentID, 999},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.svc.Register(context.Background(), &dto.RegisterRequest{
				StudentID: flex(tt.studentID), EventID: flex(tt.eventID),
			})
			// 无效引用与重复报名合并为同一错误
			if !errors.Is(err, ErrDuplicateOrInvalidReference) {
				t.Errorf("期望 ErrDuplicateOrInvalidReference，实际: %v", err)
			}
		})
	}
}

func TestParticipationService_Register_StoreError(t *testing.T) {
	f := setupTestParticipationService(true)
	boom := errors.New("database is locked")
	f.env.store.failWith = boom

	err := f.svc.Register(context.Background(), &dto.RegisterRequest{
		StudentID: flex(f.studentID), EventID: flex(f.eventID),
	})
	if !errors.Is(err, boom) {
		t.Errorf("期望透传存储错误，实际: %v", err)
	}
}

// ── RecordAttendance 测试 ──

func TestParticipationService_RecordAttendance_LatestWins(t *testing.T) {
	f := setupTestParticipationService(true)
	ctx := context.Background()

	for _, status := range []string{model.AttendancePresent, model.AttendanceAbsent} {
		err := f.svc.RecordAttendance(ctx, &dto.AttendanceRequest{
			StudentID: flex(f.studentID), EventID: flex(f.eventID), Status: status,
		})
		if err != nil {
			t.Fatalf("签到 %s 应成功: %v", status, err)
		}
	}

	if len(f.env.store.attendance) != 1 {
		t.Fatalf("期望仅 1 条签到记录，实际 %d", len(f.env.store.attendance))
	}
	got := f.env.store.attendance[pairKey{f.studentID, f.eventID}]
	if got.Status != model.AttendanceAbsent {
		t.Errorf("期望保留最后一次状态 absent，实际=%s", got.Status)
	}
}

func TestParticipationService_RecordAttendance_InvalidReference(t *testing.T) {
	f := setupTestParticipationService(true)

	err := f.svc.RecordAttendance(context.Background(), &dto.AttendanceRequest{
		StudentID: flex(f.studentID), EventID: flex(404), Status: model.AttendancePresent,
	})
	if !errors.Is(err, ErrInvalidReference) {
		t.Errorf("期望 ErrInvalidReference，实际: %v", err)
	}
}

// ── RecordFeedback 测试 ──

func TestParticipationService_RecordFeedback_Overwrite(t *testing.T) {
	f := setupTestParticipationService(true)
	ctx := context.Background()

	for _, rating := range []int64{2, 5} {
		if err := f.svc.RecordFeedback(ctx, &dto.FeedbackRequest{
			StudentID: flex(f.studentID), EventID: flex(f.eventID), Rating: flex(rating),
		}); err != nil {
			t.Fatalf("反馈应成功: %v", err)
		}
	}

	got := f.env.store.feedback[pairKey{f.studentID, f.eventID}]
	if got.Rating != 5 {
		t.Errorf("期望评分被覆盖为 5，实际=%d", got.Rating)
	}
}

func TestParticipationService_RecordFeedback_RatingRange(t *testing.T) {
	tests := []struct {
		name    string
		strict  bool
		rating  int64
		wantErr error
	}{
		{"严格模式下限", true, 1, nil},
		{"严格模式上限", true, 5, nil},
		{"严格模式 0 分", true, 0, ErrInvalidRating},
		{"严格模式 6 分", true, 6, ErrInvalidRating},
		{"宽松模式不校验范围", false, 9, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupTestParticipationService(tt.strict)
			err := f.svc.RecordFeedback(context.Background(), &dto.FeedbackRequest{
				StudentID: flex(f.studentID), EventID: flex(f.eventID), Rating: flex(tt.rating),
			})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("期望 %v，实际: %v", tt.wantErr, err)
			}
			if tt.wantErr != nil && len(f.env.store.feedback) != 0 {
				t.Error("评分非法时不应写入")
			}
		})
	}
}

func TestParticipationService_RecordFeedback_InvalidReference(t *testing.T) {
	f := setupTestParticipationService(true)

	err := f.svc.RecordFeedback(context.Background(), &dto.FeedbackRequest{
		StudentID: flex(404), EventID: flex(f.eventID), Rating: flex(3),
	})
	if !errors.Is(err, ErrInvalidReference) {
		t.Errorf("期望 ErrInvalidReference，实际: %v", err)
	}
}
