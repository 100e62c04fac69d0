package chemjson

//Package chemjson implements the serialization of goMF results as
//JSON. It's planned use is the communication of goMF programs with
//other, independent programs which can be written in languages other
//than Go, for instance via UNIX pipes. Each parsed formula becomes one
//JSON object per line, and a final Info object summarizes the run.
