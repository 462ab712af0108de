package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"project-recommender/internal/domain/project"
	"project-recommender/internal/domain/skill"
	"project-recommender/internal/domain/student"

	"github.com/google/uuid"
)

type fakeStudentRepo struct {
	mu       sync.Mutex
	byID     map[uuid.UUID]student.Student
	skills   map[uuid.UUID][]skill.StudentSkill
	getErr   error
	writeErr error
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{
		byID:   map[uuid.UUID]student.Student{},
		skills: map[uuid.UUID][]skill.StudentSkill{},
	}
}

func (f *fakeStudentRepo) put(s student.Student) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[s.ID] = s
}

func (f *fakeStudentRepo) CreateStudent(_ context.Context, s student.Student, skills []skill.StudentSkill) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	for _, existing := range f.byID {
		if existing.Email == s.Email {
			return student.ErrEmailTaken
		}
	}
	s.CreatedAt = time.Now().UTC()
	s.UpdatedAt = s.CreatedAt
	f.byID[s.ID] = s
	f.skills[s.ID] = skills
	return nil
}

func (f *fakeStudentRepo) GetStudentByID(_ context.Context, id uuid.UUID) (student.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return student.Student{}, f.getErr
	}
	s, ok := f.byID[id]
	if !ok {
		return student.Student{}, student.ErrNotFound
	}
	return s, nil
}

func (f *fakeStudentRepo) GetStudentByEmail(_ context.Context, email string) (student.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return student.Student{}, f.getErr
	}
	for _, s := range f.byID {
		if s.Email == strings.ToLower(strings.TrimSpace(email)) {
			return s, nil
		}
	}
	return student.Student{}, student.ErrNotFound
}

func (f *fakeStudentRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetStudentByEmail(ctx, email)
	if err == student.ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

func (f *fakeStudentRepo) UpdateStudent(_ context.Context, s student.Student) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	cur, ok := f.byID[s.ID]
	if !ok {
		return student.ErrNotFound
	}
	cur.Name = s.Name
	cur.Email = s.Email
	f.byID[s.ID] = cur
	return nil
}

type fakeStudentSkillRepo struct {
	mu         sync.Mutex
	bySt       map[uuid.UUID][]skill.StudentSkill
	known      map[uuid.UUID]string
	findErr    error
	replaceErr error
}

func newFakeStudentSkillRepo() *fakeStudentSkillRepo {
	return &fakeStudentSkillRepo{bySt: map[uuid.UUID][]skill.StudentSkill{}, known: map[uuid.UUID]string{}}
}

func (f *fakeStudentSkillRepo) FindByStudentID(_ context.Context, id uuid.UUID) ([]skill.StudentSkill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	out := append([]skill.StudentSkill{}, f.bySt[id]...)
	return out, nil
}

func (f *fakeStudentSkillRepo) ReplaceForStudent(_ context.Context, id uuid.UUID, skills []skill.StudentSkill) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.replaceErr != nil {
		return f.replaceErr
	}
	out := make([]skill.StudentSkill, 0, len(skills))
	for _, s := range skills {
		name, ok := f.known[s.SkillID]
		if !ok {
			return student.ErrUnknownSkill
		}
		s.SkillName = name
		out = append(out, s)
	}
	f.bySt[id] = out
	return nil
}

type fakeProjectRepo struct {
	items     []project.Project
	listErr   error
	createErr error
	created   []project.Project
	createdRq [][]skill.ProjectSkill
}

func (f *fakeProjectRepo) List(context.Context, project.ListFilter) ([]project.Project, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]project.Project{}, f.items...), nil
}

func (f *fakeProjectRepo) GetByID(_ context.Context, id uuid.UUID) (project.Project, error) {
	for _, p := range f.items {
		if p.ID == id {
			return p, nil
		}
	}
	return project.Project{}, project.ErrNotFound
}

func (f *fakeProjectRepo) FindIDByTitle(_ context.Context, title string) (uuid.UUID, error) {
	for _, p := range f.items {
		if strings.EqualFold(p.Title, strings.TrimSpace(title)) {
			return p.ID, nil
		}
	}
	return uuid.Nil, project.ErrNotFound
}

func (f *fakeProjectRepo) Create(_ context.Context, p project.Project, reqs []skill.ProjectSkill) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, p)
	f.createdRq = append(f.createdRq, reqs)
	f.items = append(f.items, p)
	return nil
}

type fakeProjectSkillRepo struct {
	byProject map[uuid.UUID][]skill.ProjectSkill
	err       error
}

func (f fakeProjectSkillRepo) FindByProjectID(_ context.Context, id uuid.UUID) ([]skill.ProjectSkill, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := f.byProject[id]
	if out == nil {
		out = []skill.ProjectSkill{}
	}
	return out, nil
}

func (f fakeProjectSkillRepo) FindByProjectIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID][]skill.ProjectSkill, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[uuid.UUID][]skill.ProjectSkill, len(ids))
	for _, id := range ids {
		if reqs, ok := f.byProject[id]; ok {
			out[id] = reqs
		}
	}
	return out, nil
}

type fakeSkillRepo struct {
	items []skill.Skill
	err   error
	got   string
}

func (f *fakeSkillRepo) GetAllSkills(_ context.Context, category string) ([]skill.Skill, error) {
	f.got = category
	return f.items, f.err
}

type fakeAttemptStore struct {
	mu     sync.Mutex
	counts map[string]int64
	err    error
}

func newFakeAttemptStore() *fakeAttemptStore {
	return &fakeAttemptStore{counts: map[string]int64{}}
}

func (f *fakeAttemptStore) Count(_ context.Context, key string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return f.counts[key], nil
}

func (f *fakeAttemptStore) Increment(_ context.Context, key string, _ time.Duration) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	f.counts[key]++
	return f.counts[key], nil
}

func (f *fakeAttemptStore) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	delete(f.counts, key)
	return nil
}

type fakeNotifier struct {
	created []project.Project
}

func (f *fakeNotifier) ProjectCreated(p project.Project) {
	f.created = append(f.created, p)
}
