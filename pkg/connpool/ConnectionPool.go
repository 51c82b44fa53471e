package connpool

import "errors"

import "google.golang.org/grpc"
import "google.golang.org/grpc/connectivity"
import "google.golang.org/grpc/credentials/insecure"


//=========================================== Connection Pool


/*
	initialize the connection pool

	the purpose of the connection pool is to reuse connections once they have been made, minimizing overhead
	for reconnecting to a host every time an rpc is made

	the pool has the following structure:
		{
			[key: address/host]: Array<connections>
		}
*/

func NewConnectionPool(opts ConnectionPoolOpts) *ConnectionPool {
	return &ConnectionPool{
		maxConn: opts.MaxConn,
	}
}

/*
	Get Connection:
		1.) load connections for the particular host/address
		2.) if the address was loaded from the thread safe map, return the first ready connection found
		3.) otherwise -- or if every existing connection is unready -- dial a new one, unless that would
			push the host over maxConn
*/

func (cp *ConnectionPool) GetConnection(addr string, port string) (*grpc.ClientConn, error) {
	connections, loaded := cp.connections.Load(addr)
	if loaded {
		conns := connections.([]*grpc.ClientConn)

		for _, conn := range conns {
			if conn != nil && conn.GetState() == connectivity.Ready { return conn, nil }
		}

		if len(conns) >= cp.maxConn { return nil, errors.New("max connections reached for " + addr) }
	}

	newConn, connErr := grpc.Dial(addr + port, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if connErr != nil { return nil, connErr }

	emptyConns, loaded := cp.connections.LoadOrStore(addr, []*grpc.ClientConn{newConn})
	if loaded {
		connections := emptyConns.([]*grpc.ClientConn)
		cp.connections.Store(addr, append(connections, newConn))
	}

	return newConn, nil
}

/*
	Put Connection:
		1.) load connections for the particular host/address
		2.) if the address was loaded from the thread safe map:
			if the connection already exists in the map, return
			otherwise, close the connection and return
*/

func (cp *ConnectionPool) PutConnection(addr string, connection *grpc.ClientConn) (bool, error) {
	connections, loaded := cp.connections.Load(addr)
	if loaded {
		for _, conn := range connections.([]*grpc.ClientConn) {
			if conn == connection { return true, nil }
		}
	}

	closeErr := connection.Close()
	if closeErr != nil { return false, closeErr }

	return false, nil
}

/*
	CloseAllConnections tears down every pooled connection to addr and
	forgets the host, so the next GetConnection for it dials afresh.
	Nothing in this module calls it automatically; marking a peer dead
	leaves its pooled connections in place.
*/

func (cp *ConnectionPool) CloseAllConnections(addr string) (bool, error) {
	connections, loaded := cp.connections.Load(addr)
	if !loaded { return false, nil }

	for _, conn := range connections.([]*grpc.ClientConn) {
		if conn == nil { continue }
		if closeErr := conn.Close(); closeErr != nil { return false, closeErr }
	}

	cp.connections.Delete(addr)

	return true, nil
}
