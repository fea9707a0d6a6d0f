package course

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/fairwaylabs/pressbook/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetCourse() {
	course := &models.Course{
		ID:      "test-course-id",
		OwnerID: "test-owner-id",
		Name:    "Pebble Creek",
		City:    "Austin",
		Holes: map[int]models.Hole{
			1:  {Par: 4, StrokeIndex: 5},
			2:  {Par: 3, StrokeIndex: 17},
			18: {Par: 5, StrokeIndex: 16},
		},
	}

	err := s.repo.SaveCourse(context.Background(), &SaveCourseInput{Course: course})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetCourse(context.Background(), &GetCourseInput{CourseID: "test-course-id"})
	s.Require().NoError(err)
	s.Equal(course, retrieved)
}

func (s *RedisRepositoryTestSuite) TestGetCourseNotFound() {
	_, err := s.repo.GetCourse(context.Background(), &GetCourseInput{CourseID: "missing"})
	s.ErrorIs(err, ErrCourseNotFound)
}

func (s *RedisRepositoryTestSuite) TestListAndDeleteCourses() {
	for _, c := range []*models.Course{
		{ID: "c1", OwnerID: "test-owner-id", Name: "North"},
		{ID: "c2", OwnerID: "test-owner-id", Name: "South"},
	} {
		s.Require().NoError(s.repo.SaveCourse(context.Background(), &SaveCourseInput{Course: c}))
	}

	courses, err := s.repo.ListCoursesByOwner(context.Background(), &ListCoursesByOwnerInput{OwnerID: "test-owner-id"})
	s.Require().NoError(err)
	s.Len(courses, 2)

	err = s.repo.DeleteCourse(context.Background(), &DeleteCourseInput{CourseID: "c1", OwnerID: "test-owner-id"})
	s.Require().NoError(err)

	courses, err = s.repo.ListCoursesByOwner(context.Background(), &ListCoursesByOwnerInput{OwnerID: "test-owner-id"})
	s.Require().NoError(err)
	s.Len(courses, 1)
	s.Equal("c2", courses[0].ID)
}
