package pipeline

import (
	"log"

	"kidreel/publish"
	"kidreel/store"
	"kidreel/types"
)

// Service ties the core pipeline to the content store and publisher and owns
// the record's status transitions. The API server and the Kafka worker both
// process jobs through it.
type Service struct {
	Core      *Pipeline
	Store     store.Store
	Publisher *publish.Publisher
	Jobs      *Registry
}

func NewService(core *Pipeline, st store.Store, pub *publish.Publisher) *Service {
	return &Service{Core: core, Store: st, Publisher: pub, Jobs: NewRegistry()}
}

// Process runs the whole generation job for one record and persists the
// terminal outcome: completed with a video URL, or error with a message.
// There is no partial or degraded success state.
func (s *Service) Process(content types.Content) error {
	tr := s.Jobs.Start(content.ID)
	log.Printf("Content %d: starting video generation", content.ID)

	content.Status = types.StatusProcessing
	content.ErrorMessage = ""
	if err := s.Store.Update(content); err != nil {
		log.Printf("Content %d: status update failed: %v", content.ID, err)
	}

	outputPath, err := s.Core.Run(content, tr)
	if err != nil {
		log.Printf("Content %d: generation failed: %v", content.ID, err)
		content.Status = types.StatusError
		content.ErrorMessage = err.Error()
		if uerr := s.Store.Update(content); uerr != nil {
			log.Printf("Content %d: error-state update failed: %v", content.ID, uerr)
		}
		return err
	}

	url := s.Publisher.Publish(outputPath, content)
	content.Status = types.StatusCompleted
	content.VideoURL = url
	content.ErrorMessage = ""
	if err := s.Store.Update(content); err != nil {
		log.Printf("Content %d: completion update failed: %v", content.ID, err)
	}
	tr.Complete(url)
	log.Printf("Content %d: video ready at %s", content.ID, url)
	return nil
}
