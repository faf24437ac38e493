package scene

const sampleTOML = `
[scene]
name = "sample"
start_time = 0
end_time = 100

[[tracks]]
name = "video"

  [[tracks.items]]
  label = "a"
  start = 10
  end = 20

  [[tracks.items]]
  label = "b"
  start = 30
  end = 50

[[tracks]]
name = "audio"
`
