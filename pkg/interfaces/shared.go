package _interface

// ServiceContainer holds every service instance the routes need.
type ServiceContainer struct {
	ExtractionService   ExtractionService
	QuizService         QuizService
	ServerStatusService ServerStatusService
}
