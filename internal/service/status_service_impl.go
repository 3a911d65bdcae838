package service

import (
	"context"
	"time"

	"github.com/evadimova/skhole/internal/contract"
	"github.com/evadimova/skhole/internal/domain"
	"github.com/evadimova/skhole/internal/repository"
	"github.com/evadimova/skhole/internal/scheduler"
)

type statusService struct {
	subjects repository.SubjectRepo
	tasks    repository.TaskRepo
	sessions repository.SessionRepo
}

func NewStatusService(subjects repository.SubjectRepo, tasks repository.TaskRepo, sessions repository.SessionRepo) StatusService {
	return &statusService{subjects: subjects, tasks: tasks, sessions: sessions}
}

func (s *statusService) GetStatus(ctx context.Context, req contract.StatusRequest) (*contract.StatusResponse, error) {
	today := todayOrNow(req.Today)

	subjects, err := s.subjects.List(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sessions, err := s.sessions.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	tasksBySubject := make(map[string][]*domain.StudyTask)
	for _, t := range tasks {
		tasksBySubject[t.SubjectID] = append(tasksBySubject[t.SubjectID], t)
	}
	sessionsBySubject := make(map[string][]domain.PlannedSession)
	for _, sess := range sessions {
		sessionsBySubject[sess.SubjectID] = append(sessionsBySubject[sess.SubjectID], *sess)
	}

	resp := &contract.StatusResponse{GeneratedAt: time.Now().UTC()}
	for _, subj := range subjects {
		st := contract.SubjectStatus{
			SubjectID:   subj.ID,
			SubjectName: subj.Name,
			Deadline:    subj.Deadline,
			DaysLeft:    subj.DaysLeft(today),
		}

		for _, t := range tasksBySubject[subj.ID] {
			st.TasksTotal++
			if t.Completed {
				st.TasksDone++
			}
		}

		subjSessions := sessionsBySubject[subj.ID]
		for _, sess := range subjSessions {
			st.PlannedMin += sess.PlannedMin
			if sess.Completed {
				if sess.ActualMin != nil {
					st.CompletedMin += *sess.ActualMin
				} else {
					st.CompletedMin += sess.PlannedMin
				}
			} else {
				st.PendingMin += sess.PlannedMin
			}
		}

		pace := scheduler.ComputePace(subjSessions, today)
		if pace.Assessable {
			st.PaceRatio = pace.ActualRate / pace.PlannedRate
			st.Behind = st.PaceRatio < 0.9
		}

		resp.Subjects = append(resp.Subjects, st)
	}

	return resp, nil
}
