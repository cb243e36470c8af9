package loader

import "movieland/movie"

func demoMovie(title string, year int, description string) movie.Input {
	return movie.Input{Title: title, Year: year, Description: &description}
}

// DemoMovies returns a fresh copy of the demo catalogue on every call.
func DemoMovies() []movie.Input {
	return []movie.Input{
		demoMovie("The Matrix", 1999, "A hacker discovers the nature of reality."),
		demoMovie("Inception", 2010, "Dream within a dream."),
		demoMovie("Interstellar", 2014, "A space journey to save humanity."),
		demoMovie("The Dark Knight", 2008, "Batman vs Joker."),
		demoMovie("Pulp Fiction", 1994, "Non-linear crime stories."),
		demoMovie("Spirited Away", 2001, "Girl enters the spirit world."),
		demoMovie("The Lord of the Rings", 2001, "The Fellowship begins."),
		demoMovie("Toy Story", 1995, "Toys come alive."),
	}
}
