package service

import (
	"github.com/gosimple/slug"

	"learnpath_backend/internal/common"
	"learnpath_backend/internal/domain/model"
)

// RoadmapService serves the static learning-path catalog. Built once at
// startup, read-only afterwards, so it is safe for concurrent requests.
type RoadmapService struct {
	order    []string
	roadmaps map[string]*model.Roadmap
}

func NewRoadmapService() *RoadmapService {
	s := &RoadmapService{roadmaps: make(map[string]*model.Roadmap)}
	for _, r := range catalog() {
		r.Key = slug.Make(r.Key)
		s.order = append(s.order, r.Key)
		s.roadmaps[r.Key] = r
	}
	return s
}

func (s *RoadmapService) List() []model.RoadmapSummary {
	summaries := make([]model.RoadmapSummary, 0, len(s.order))
	for _, key := range s.order {
		r := s.roadmaps[key]
		summaries = append(summaries, model.RoadmapSummary{
			Key:         r.Key,
			Title:       r.Title,
			Description: r.Description,
			Jobs:        r.Jobs,
		})
	}
	return summaries
}

func (s *RoadmapService) Get(key string) (*model.Roadmap, error) {
	r, ok := s.roadmaps[key]
	if !ok {
		return nil, common.WithMessage(common.ErrNotFound, "Course not found!")
	}
	return r, nil
}

func catalog() []*model.Roadmap {
	return []*model.Roadmap{
		{
			Key:         "web-dev",
			Title:       "Full Stack Web Development",
			Description: "This path provides a comprehensive journey from frontend aesthetics to backend logic, preparing you to build and deploy complete web applications.",
			Steps: []model.RoadmapStep{
				{Title: "Module 1: Foundations - HTML, CSS, & Git", Description: "Learn the core structure of web pages with HTML, style them with CSS, and manage your code with Git version control."},
				{Title: "Module 2: JavaScript Fundamentals", Description: "Master the programming language of the web for interactive and dynamic content."},
				{Title: "Module 3: Frontend Frameworks (React)", Description: "Build modern, fast, and scalable user interfaces by learning the component-based architecture of React."},
				{Title: "Module 4: Backend Development (Python & Flask)", Description: "Create powerful servers, RESTful APIs, and handle server-side logic using the Flask framework."},
				{Title: "Module 5: Databases & SQL", Description: "Learn to design, manage, and query relational databases to store and retrieve application data effectively."},
				{Title: "Module 6: Deployment & Cloud Basics", Description: "Understand how to take your application live using cloud services and basic DevOps principles."},
			},
			Jobs: []string{"Frontend Developer", "Backend Developer", "Full Stack Developer", "Web Application Engineer"},
		},
		{
			Key:         "ml-eng",
			Title:       "Machine Learning Engineer",
			Description: "This path covers the essential skills for a career in Artificial Intelligence.",
			Steps:       []model.RoadmapStep{},
			Jobs:        []string{"Machine Learning Engineer", "Data Scientist", "AI Developer"},
		},
		{
			Key:         "devops",
			Title:       "Cloud & DevOps Engineer",
			Description: "Learn to automate, deploy, and scale modern software applications in the cloud.",
			Steps:       []model.RoadmapStep{},
			Jobs:        []string{"DevOps Engineer", "Cloud Engineer", "Site Reliability Engineer (SRE)"},
		},
	}
}
